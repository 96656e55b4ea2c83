package usecase

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// ApplyInput moves the game one round forward from the raw line a player
// typed. The returned state is a new value; on error only its Message
// differs from the given one.
func ApplyInput(state entity.GameState, raw string) (entity.GameState, error) {
	if state.IsFinished() {
		return state, apperror.ErrGameFinished
	}

	cell, err := parseCell(raw)
	if err != nil {
		state.Message = entity.InvalidInputMessage
		return state, err
	}

	board, err := tictactoe.ApplyMove(state.Board, cell, state.Turn)
	if err != nil {
		if errors.Is(err, apperror.ErrAlreadySelected) {
			state.Message = entity.AlreadySelectedMessage(state.Turn)
		} else {
			state.Message = entity.InvalidInputMessage
		}
		return state, err
	}

	state.Board = board
	state.Round++

	if tictactoe.HasWinner(board) {
		state.Status = entity.StatusWon
		state.Message = entity.WinMessage(state.Turn)
		return state, nil
	}

	state.Turn = state.Turn.Opponent()
	state.Message = entity.TurnMessage(state.Turn)

	return state, nil
}

// CheckTerminal - declares a tie once every cell is used without a winner.
func CheckTerminal(state entity.GameState) entity.GameState {
	if state.Status == entity.StatusInProgress && state.Round >= entity.BoardSize {
		state.Status = entity.StatusTied
		state.Message = entity.TieMessage
	}

	return state
}
