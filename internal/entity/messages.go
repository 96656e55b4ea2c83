package entity

import "fmt"

const (
	InvalidInputMessage = "Expected a number between 1 and 9."
	TieMessage          = "Players tie."
)

func TurnMessage(mark Mark) string {
	return fmt.Sprintf("Player %s turn.", mark)
}

func WinMessage(mark Mark) string {
	return fmt.Sprintf("Player %s wins!", mark)
}

func AlreadySelectedMessage(mark Mark) string {
	return fmt.Sprintf("Already selected. Still player %s's turn.", mark)
}
