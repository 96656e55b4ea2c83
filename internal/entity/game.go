package entity

import "strconv"

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Board holds one value per cell. An unoccupied cell holds its own 1-based
// position label, an occupied one holds a Mark.
type Board [BoardSize]string

// GameState is the aggregate owned by the round loop. It is passed and
// returned by value, every round produces a new one.
type GameState struct {
	ID      string
	Board   Board
	Turn    Mark
	Round   int
	Status  Status
	Message string
}

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = strconv.Itoa(i + 1)
	}

	return board
}

func NewGameState(id string) GameState {
	return GameState{
		ID:      id,
		Board:   NewBoard(),
		Turn:    PlayerX,
		Round:   0,
		Status:  StatusInProgress,
		Message: TurnMessage(PlayerX),
	}
}

// IsMark reports whether value is a player mark rather than a cell label.
func IsMark(value string) bool {
	return value == string(PlayerX) || value == string(PlayerO)
}

// IsOccupied - checks if the cell holds a mark.
func (that Board) IsOccupied(cell int) bool {
	return IsMark(that[cell])
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that GameState) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}

func (that GameState) IsWon() bool {
	return that.Status == StatusWon
}

func (that GameState) IsTied() bool {
	return that.Status == StatusTied
}
