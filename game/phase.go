package game

import "fmt"

// AfterAction advances the state machine once move has been executed, i.e.
// its card has already left the player's hand.
func (gs *GameState) AfterAction(move Move) error {
	if gs.Ended {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}

	switch move.Action {
	case PassAction:
		if gs.Phase != PassingPhase {
			return fmt.Errorf("%w: cannot pass during %s", ErrIllegalMove, gs.Phase)
		}
		return gs.afterPass(move)
	case PlayAction:
		if gs.Phase != PlayingPhase {
			return fmt.Errorf("%w: cannot play during %s", ErrIllegalMove, gs.Phase)
		}
		return gs.afterPlay(move)
	default:
		return fmt.Errorf("%w: unknown action type %v", ErrInvariant, move.Action)
	}
}

func (gs *GameState) afterPass(move Move) error {
	p := move.Player
	gs.PendingPasses[p] = append(gs.PendingPasses[p], move.Card)
	gs.PassCounts[p]++
	if gs.PassCounts[p] < PassCount {
		return nil
	}

	if !gs.allPassed() {
		gs.CurrentPlayer = gs.nextPlayer(p)
		return nil
	}
	if err := gs.exchangePasses(); err != nil {
		return err
	}
	return gs.startPlaying()
}

func (gs *GameState) allPassed() bool {
	for _, count := range gs.PassCounts {
		if count < PassCount {
			return false
		}
	}
	return true
}

// exchangePasses hands every pending card to its recipient.
func (gs *GameState) exchangePasses() error {
	direction, err := gs.PassDirection()
	if err != nil {
		return err
	}
	n := gs.NumPlayers()
	for from := 0; from < n; from++ {
		to := (from + direction) % n
		gs.Hands[to] = append(gs.Hands[to], gs.PendingPasses[from]...)
		gs.PendingPasses[from] = nil
		gs.PassCounts[from] = 0
	}
	return nil
}

// PassDirection returns the seat offset cards are passed to in the current
// round. For an odd table the across pass uses N/2 rounded down.
func (gs GameState) PassDirection() (int, error) {
	n := gs.Config.Players
	switch gs.Round {
	case 1: // left
		return 1, nil
	case 2: // right
		return n - 1, nil
	case 3: // across
		return n / 2, nil
	case 4: // hold
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: unexpected round %d", ErrInvariant, gs.Round)
	}
}

// startPlaying switches to trick play with the two of clubs holder on lead.
func (gs *GameState) startPlaying() error {
	holder := gs.TwoOfClubsHolder()
	if holder < 0 {
		return fmt.Errorf("%w: no player holds the two of clubs", ErrInvariant)
	}
	gs.Phase = PlayingPhase
	gs.Leader = holder
	gs.CurrentPlayer = holder
	return nil
}

// TwoOfClubsHolder returns the seat holding the two of clubs, or -1.
func (gs GameState) TwoOfClubsHolder() int {
	for i, hand := range gs.Hands {
		for _, c := range hand {
			if c == TwoOfClubs {
				return i
			}
		}
	}
	return -1
}

func (gs *GameState) afterPlay(move Move) error {
	gs.FirstTrick = false
	if len(gs.Trick) == 0 {
		gs.LeadSuit = move.Card.Suit
		gs.Leader = move.Player
	}
	gs.Trick = append(gs.Trick, TrickCard{Player: move.Player, Card: move.Card})
	if move.Card.Suit == Hearts {
		gs.HeartsBroken = true
	}

	if len(gs.Trick) < gs.NumPlayers() {
		gs.CurrentPlayer = gs.nextPlayer(move.Player)
		return nil
	}
	return gs.endTrick()
}

func (gs *GameState) nextPlayer(player int) int {
	return (player + 1) % gs.NumPlayers()
}
