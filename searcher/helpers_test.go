package searcher

import "jungle/game"

func uniformEvaluator(value float64) Evaluator {
	return EvaluatorFunc(func(obs game.Observation) ([]float64, float64) {
		prior := make([]float64, game.NumActions)
		for i := range prior {
			prior[i] = 1.0 / game.NumActions
		}
		return prior, value
	})
}

func newScenarioState(toMove game.Side, pieces ...game.Placement) *game.GameState {
	gs := game.NewGameState(game.Config{})
	if err := gs.Reset(&game.Scenario{Name: "test", ToMove: toMove, Pieces: pieces}); err != nil {
		panic(err)
	}
	return gs
}

func place(row, col int, side game.Side, rank game.Rank) game.Placement {
	return game.Placement{At: game.Position{Row: row, Col: col}, Side: side, Rank: rank}
}
