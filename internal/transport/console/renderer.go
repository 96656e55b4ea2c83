package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// ClearScreen erases the terminal and moves the cursor to row 1, column 1.
const ClearScreen = "\x1b[2J\x1b[1;1H"

const (
	boardBorder  = "-------------\n"
	rowSeparator = "|---|---|---|\n"
	rowLength    = 3
)

type Options struct {
	ClearScreen bool
	Colors      bool
}

// Renderer draws the board followed by the status message.
type Renderer struct {
	out         io.Writer
	clearScreen bool
	marks       map[entity.Mark]*color.Color
}

func NewRenderer(out io.Writer, opts Options) *Renderer {
	marks := map[entity.Mark]*color.Color{
		entity.PlayerX: color.New(color.FgCyan, color.Bold),
		entity.PlayerO: color.New(color.FgMagenta, color.Bold),
	}

	for _, c := range marks {
		if opts.Colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Renderer{
		out:         out,
		clearScreen: opts.ClearScreen,
		marks:       marks,
	}
}

func (that *Renderer) Render(state entity.GameState) error {
	var sb strings.Builder

	if that.clearScreen {
		sb.WriteString(ClearScreen)
	}

	sb.WriteString(boardBorder)
	for row := 0; row < len(state.Board)/rowLength; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		first := row * rowLength
		fmt.Fprintf(&sb, "| %s | %s | %s |\n",
			that.cell(state.Board[first]), that.cell(state.Board[first+1]), that.cell(state.Board[first+2]))
	}
	sb.WriteString(boardBorder)

	fmt.Fprintf(&sb, "\n%s\n", state.Message)

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Renderer) cell(value string) string {
	if c, ok := that.marks[entity.Mark(value)]; ok {
		return c.Sprint(value)
	}

	return value
}
