package game

const (
	// PassCount is how many cards each player hands on in a passing round.
	PassCount = 3
	// DefaultPenaltyCeiling ends the game once a player's score reaches it.
	DefaultPenaltyCeiling = 100
	// FullInformation requests an unrandomized copy from CopyFor.
	FullInformation = -1
	// RoundsPerCycle is the length of the left, right, across, hold cycle.
	RoundsPerCycle = 4
)

type StateHash uint64

// Evaluate scores a state from the point of view of playerID. Higher is better.
type Evaluate func(gs *GameState, playerID int) float64
