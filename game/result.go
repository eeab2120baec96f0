package game

import "golang.org/x/exp/slices"

type Result int

const (
	Undecided Result = iota
	Win
	Draw
	Loss
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return "undecided"
	}
}

// endGame ranks the players. Everyone on the lowest score wins, sharing a
// draw when there is more than one of them; everyone else loses.
func (gs *GameState) endGame() {
	lowest := slices.Min(gs.Points)
	winners := 0
	for _, points := range gs.Points {
		if points == lowest {
			winners++
		}
	}

	gs.Results = make([]Result, len(gs.Points))
	for i, points := range gs.Points {
		switch {
		case points != lowest:
			gs.Results[i] = Loss
		case winners == 1:
			gs.Results[i] = Win
		default:
			gs.Results[i] = Draw
		}
	}
	gs.Ended = true
}

// Winners returns the players on the lowest score once the game has ended.
func (gs GameState) Winners() []int {
	if !gs.Ended {
		return nil
	}
	var winners []int
	for i, r := range gs.Results {
		if r == Win || r == Draw {
			winners = append(winners, i)
		}
	}
	return winners
}

// OrdinalPosition returns the standing of the player, 1 being best. Lower
// scores rank higher and ties share a position.
func (gs GameState) OrdinalPosition(player int) int {
	position := 1
	for _, points := range gs.Points {
		if points < gs.Points[player] {
			position++
		}
	}
	return position
}
