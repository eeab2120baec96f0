package game

import (
	"fmt"

	"hearts/utils"
)

// Move is a single player action. Moves are plain comparable values.
type Move struct {
	Action ActionType
	Player int
	Card   Card
}

// Pass selects a card to hand to another player during the passing phase.
func Pass(player int, card Card) Move {
	return Move{Action: PassAction, Player: player, Card: card}
}

// Play puts a card on the current trick.
func Play(player int, card Card) Move {
	return Move{Action: PlayAction, Player: player, Card: card}
}

func (m Move) String() string {
	return fmt.Sprintf("%s(p%d %s)", m.Action, m.Player, m.Card)
}

// Execute removes the moved card from the player's hand. It reports false if
// the player does not hold the card, in which case the state is unchanged.
func (m Move) Execute(gs *GameState) bool {
	if m.Player < 0 || m.Player >= len(gs.Hands) {
		return false
	}
	hand, ok := utils.Remove(gs.Hands[m.Player], m.Card)
	if !ok {
		return false
	}
	gs.Hands[m.Player] = hand
	return true
}
