package game

import "fmt"

// ActionType represents the kind of move a player can make.
type ActionType int

const (
	PassAction ActionType = iota
	PlayAction
)

func (a ActionType) String() string {
	switch a {
	case PassAction:
		return "pass"
	case PlayAction:
		return "play"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}
