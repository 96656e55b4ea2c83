package apperror

import "errors"

var (
	ErrReadFailure     = errors.New("could not read input")
	ErrNotANumber      = errors.New("input is not a number")
	ErrOutOfRange      = errors.New("number is out of range")
	ErrAlreadySelected = errors.New("cell is already selected")
	ErrGameFinished    = errors.New("game is already finished")
	ErrInputClosed     = errors.New("input stream is closed")
)
