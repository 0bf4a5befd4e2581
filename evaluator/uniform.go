package evaluator

import "jungle/game"

// Uniform spreads the prior evenly over every encoded move and calls every
// position even. Search guided by it is plain PUCT with random rollouts.
type Uniform struct{}

func (Uniform) Evaluate(obs game.Observation) ([]float64, float64) {
	return uniformPrior(), 0
}
