package agent

import (
	"jungle/experiments/metrics"
	"jungle/game"
)

type Agent interface {
	// FindMove returns a move for the side to move and performance metrics (if collected) from the search
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric)
}
