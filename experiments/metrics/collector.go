package metrics

import (
	"sync/atomic"
	"time"

	"hearts/game"

	"github.com/google/uuid"
)

// AgentConfig describes a player taking part in an experiment.
type AgentConfig struct {
	ID        int    `yaml:"id"`
	Kind      string `yaml:"kind"`      // "random" or "greedy"
	Heuristic string `yaml:"heuristic"` // Name passed to game.HeuristicByName
	Samples   int    `yaml:"samples"`   // Determinized copies per candidate move
}

type MoveMetric struct {
	Step     int
	Player   int
	Round    int // Deal number, starting at 1
	Action   game.ActionType
	Card     game.Card
	Hash     game.StateHash
	Duration time.Duration // Time the agent took to choose
}

type GameMetric struct {
	ID             string
	StartingPlayer int
	Winners        []int
	Points         []int
	Rounds         int
	Tricks         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Completed      bool // False when stopped by the move limit
}

type Collector interface {
	Start(startingPlayer int)
	AddMove()
	AddTrick()
	AddRound()
	Complete(final *game.GameState) GameMetric
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	moves          atomic.Int32
	tricks         atomic.Int32
	rounds         atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.startTime = time.Now()
	m.startingPlayer = startingPlayer
	m.rounds.Store(1)
}

func (m *collector) AddMove() {
	m.moves.Add(1)
}

func (m *collector) AddTrick() {
	m.tricks.Add(1)
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) Complete(final *game.GameState) GameMetric {
	end := time.Now()
	return GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: m.startingPlayer,
		Winners:        final.Winners(),
		Points:         append([]int(nil), final.Points...),
		Rounds:         int(m.rounds.Load()),
		Tricks:         int(m.tricks.Load()),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     int(m.moves.Load()),
		Completed:      final.Ended,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer int) {}
func (m *dummyCollector) AddMove()                 {}
func (m *dummyCollector) AddTrick()                {}
func (m *dummyCollector) AddRound()                {}
func (m *dummyCollector) Complete(final *game.GameState) GameMetric {
	return GameMetric{Winners: final.Winners(), Completed: final.Ended}
}
