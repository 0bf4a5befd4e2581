package engine

import (
	"jungle/experiments/metrics"
	"jungle/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
