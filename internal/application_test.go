package application

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("Plays a whole game to a win", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: X wins on the first row
		var out bytes.Buffer
		input := st.Input("1", "4", "2", "5", "3")

		// When: playing the game
		err := Play(ctx, st.Logger, input, &out, console.Options{ClearScreen: true})
		require.NoError(t, err)

		// Then: every round was drawn after clearing the screen
		output := out.String()
		assert.Equal(t, 6, strings.Count(output, console.ClearScreen))
		assert.True(t, strings.HasSuffix(output, "| X | X | X |\n"+
			"|---|---|---|\n"+
			"| O | O | 6 |\n"+
			"|---|---|---|\n"+
			"| 7 | 8 | 9 |\n"+
			"-------------\n"+
			"\n"+
			"Player X wins!\n"))
	})

	t.Run("Plays a whole game to a tie", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a move sequence without a winner
		var out bytes.Buffer
		input := st.Input("1", "2", "3", "5", "4", "6", "8", "7", "9")

		// When: playing the game
		err := Play(ctx, st.Logger, input, &out, console.Options{})
		require.NoError(t, err)

		// Then: the tie is announced last
		assert.True(t, strings.HasSuffix(out.String(), "\nPlayers tie.\n"))
	})

	t.Run("Returns ErrInputClosed when input ends early", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: input that ends after two moves
		var out bytes.Buffer

		// When: playing the game
		err := Play(ctx, st.Logger, st.Input("1", "2"), &out, console.Options{})

		// Then: the game stopped because of the closed input
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.True(t, strings.HasSuffix(out.String(), "\nExpected a number between 1 and 9.\n"))
	})

	t.Run("Returns nil when the context is canceled", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a canceled context
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		// When: playing the game
		err := Play(canceled, st.Logger, st.Input("5"), &bytes.Buffer{}, console.Options{})

		// Then: no error is reported
		require.NoError(t, err)
	})
}
