package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	minCellNumber = 1
	maxCellNumber = 9
)

// parseCell - converts the 1-based number typed by a player into a cell index.
func parseCell(raw string) (int, error) {
	number, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotANumber, raw)
	}

	if number < minCellNumber || number > maxCellNumber {
		return 0, fmt.Errorf("%w: %d", apperror.ErrOutOfRange, number)
	}

	return int(number) - 1, nil
}
