package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// LineReader reads one line per round from the operator.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		reader: bufio.NewReader(in),
	}
}

// ReadLine - returns the next line without its line ending.
// A final line that is not terminated by a newline is still returned.
func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrReadFailure, err)
	}

	line, err := that.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", apperror.ErrReadFailure, err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
