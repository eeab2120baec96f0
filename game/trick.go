package game

import "fmt"

// ResolveTrick returns the player who won the trick: the highest card of the
// lead suit. Off-suit cards never win. It returns -1 if no card follows the lead.
func ResolveTrick(trick []TrickCard, lead Suit) int {
	winner := -1
	highest := Rank(0)
	for _, tc := range trick {
		if tc.Card.Suit == lead && tc.Card.Rank > highest {
			highest = tc.Card.Rank
			winner = tc.Player
		}
	}
	return winner
}

// endTrick resolves a complete trick, banks its points and either hands the
// lead to the winner or closes the round.
func (gs *GameState) endTrick() error {
	winner := ResolveTrick(gs.Trick, gs.LeadSuit)
	if winner < 0 {
		return fmt.Errorf("%w: trick %v has no card of lead suit %s", ErrInvariant, gs.Trick, gs.LeadSuit)
	}

	for _, tc := range gs.Trick {
		gs.TrickPiles[winner] = append(gs.TrickPiles[winner], tc.Card)
	}
	gs.TricksTaken[winner]++
	gs.CalculatePoints(winner)

	gs.Trick = nil
	gs.LeadSuit = NoSuit
	gs.Leader = winner
	gs.CurrentPlayer = winner

	if !gs.RoundOver() {
		return nil
	}
	return gs.endRound()
}

// CalculatePoints banks the penalty points of the player's trick pile: one
// per heart and 13 for the queen of spades. The pile is emptied into the
// player's won cards. It returns the points added.
func (gs *GameState) CalculatePoints(player int) int {
	points := 0
	for _, c := range gs.TrickPiles[player] {
		points += c.Points()
	}
	gs.Points[player] += points
	gs.WonCards[player] = append(gs.WonCards[player], gs.TrickPiles[player]...)
	gs.TrickPiles[player] = nil
	return points
}

// RoundOver reports whether every hand has been played out.
func (gs GameState) RoundOver() bool {
	for _, hand := range gs.Hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

func (gs *GameState) endRound() error {
	for _, points := range gs.Points {
		if points >= gs.Config.PenaltyCeiling {
			gs.endGame()
			return nil
		}
	}

	gs.Round = gs.Round%RoundsPerCycle + 1
	return gs.deal()
}
