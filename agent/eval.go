package agent

import (
	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state)
	return game.DecodeMove(policy.Best()), metric
}
