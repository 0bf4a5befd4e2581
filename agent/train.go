package agent

import (
	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/searcher"
	"sort"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. Moves
// are sampled from the search policy sharpened or flattened by temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	return trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a trainingAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state)
	policy = policy.Temperature(a.temperature)
	return game.DecodeMove(sample(policy, a.rng.Float64())), metric
}

// sample walks the policy in encoding order so a fixed draw always picks
// the same move.
func sample(policy searcher.Policy, draw float64) int {
	actions := make([]int, 0, len(policy))
	for action := range policy {
		actions = append(actions, action)
	}
	sort.Ints(actions)

	cumulative := 0.0
	for _, action := range actions {
		cumulative += policy[action]
		if draw < cumulative {
			return action
		}
	}
	return actions[len(actions)-1] // Fallback in case of rounding errors
}
