package evaluator

import (
	"fmt"
	"jungle/game"
	"jungle/searcher"
)

var (
	_ searcher.Evaluator = Uniform{}
	_ searcher.Evaluator = Material{}
	_ searcher.Evaluator = (*Network)(nil)
)

// New returns the evaluator registered under name. cfg is only used by
// "network".
func New(name string, cfg NetworkConfig) (searcher.Evaluator, error) {
	switch name {
	case "uniform":
		return Uniform{}, nil
	case "material":
		return Material{}, nil
	case "network":
		return NewNetwork(cfg), nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
}

func uniformPrior() []float64 {
	prior := make([]float64, game.NumActions)
	for i := range prior {
		prior[i] = 1.0 / game.NumActions
	}
	return prior
}
