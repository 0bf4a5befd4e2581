package searcher

import (
	"fmt"
	"jungle/game"
	"math"
)

const (
	DefaultSimulations = 100
	DefaultCPuct       = 1.0

	// MaxCutoff caps a rollout so random play cannot run forever.
	MaxCutoff = 1000
)

// Evaluator scores an observation with a prior over every encoded move and
// a value in [-1, 1] from the observing side's perspective.
type Evaluator interface {
	Evaluate(obs game.Observation) (prior []float64, value float64)
}

type EvaluatorFunc func(obs game.Observation) ([]float64, float64)

func (f EvaluatorFunc) Evaluate(obs game.Observation) ([]float64, float64) {
	return f(obs)
}

// evaluate queries the evaluator and enforces its output contract.
func evaluate(e Evaluator, obs game.Observation) ([]float64, float64) {
	prior, value := e.Evaluate(obs)
	if len(prior) != game.NumActions {
		panic(fmt.Sprintf("evaluator returned %d priors, want %d", len(prior), game.NumActions))
	}
	return prior, clamp(value)
}

func clamp(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return math.Max(-1, math.Min(1, value))
}
