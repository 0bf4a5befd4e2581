package agent

import (
	"jungle/experiments/metrics"
	"jungle/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random
// legal move without searching.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves(state.SideToMove())
	if len(moves) == 0 {
		panic("no legal moves")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
