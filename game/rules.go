package game

import "golang.org/x/exp/slices"

// LegalMoves returns all legal moves for the current player. The result is
// empty only once the game has ended.
func (gs GameState) LegalMoves() []Move {
	if gs.Ended || gs.CurrentPlayer < 0 || gs.CurrentPlayer >= len(gs.Hands) {
		return nil
	}
	player := gs.CurrentPlayer
	hand := gs.Hands[player]

	switch gs.Phase {
	case PassingPhase:
		return passMoves(player, hand)
	case PlayingPhase:
		return gs.playMoves(player, hand)
	default:
		return nil
	}
}

// Any card in hand may be passed.
func passMoves(player int, hand []Card) []Move {
	moves := make([]Move, 0, len(hand))
	for _, c := range hand {
		moves = append(moves, Pass(player, c))
	}
	return moves
}

func (gs *GameState) playMoves(player int, hand []Card) []Move {
	// The two of clubs opens the first trick, whatever else is in hand
	if gs.FirstTrick && slices.Contains(hand, TwoOfClubs) {
		return []Move{Play(player, TwoOfClubs)}
	}

	var moves []Move
	if gs.LeadSuit != NoSuit && holdsSuit(hand, gs.LeadSuit) {
		for _, c := range hand {
			if c.Suit == gs.LeadSuit {
				moves = append(moves, Play(player, c))
			}
		}
		return moves
	}

	onlyHearts := !slices.ContainsFunc(hand, func(c Card) bool { return c.Suit != Hearts })
	for _, c := range hand {
		if c.Suit != Hearts || gs.HeartsBroken || onlyHearts {
			moves = append(moves, Play(player, c))
		}
	}
	return moves
}

func holdsSuit(hand []Card, suit Suit) bool {
	return slices.ContainsFunc(hand, func(c Card) bool { return c.Suit == suit })
}

// IsLegal reports whether move is currently legal.
func (gs GameState) IsLegal(move Move) bool {
	return slices.Contains(gs.LegalMoves(), move)
}
