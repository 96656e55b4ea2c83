package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell index")

// WinCombos lists the rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ApplyMove - places mark on cell and returns the new board.
// The given board is never modified, on error it is returned as is.
func ApplyMove(board entity.Board, cell int, mark entity.Mark) (entity.Board, error) {
	if cell < 0 || cell >= len(board) {
		return board, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if board.IsOccupied(cell) {
		return board, apperror.ErrAlreadySelected
	}

	board[cell] = string(mark)

	return board, nil
}

// HasWinner - checks if any combo is filled by a single mark.
func HasWinner(board entity.Board) bool {
	_, ok := Winner(board)
	return ok
}

// Winner returns the mark that filled a combo. Unoccupied cells are skipped
// first so a combo of three equal labels could never count as a win.
func Winner(board entity.Board) (entity.Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !entity.IsMark(a) {
			continue
		}

		if a == b && b == c {
			return entity.Mark(a), true
		}
	}

	return "", false
}

// IsFull - checks if every cell holds a mark.
func IsFull(board entity.Board) bool {
	for cell := range board {
		if !board.IsOccupied(cell) {
			return false
		}
	}

	return true
}
