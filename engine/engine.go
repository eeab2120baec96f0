package engine

import "hearts/experiments/metrics"

// MaxMoves guards against games that never reach the penalty ceiling.
const MaxMoves = 20000

type Engine interface {
	// Run plays a game till it ends or a max number of moves is reached
	Run() (winners []int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
