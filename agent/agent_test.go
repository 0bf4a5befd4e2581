package agent

import (
	"jungle/game"
	"jungle/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func uniformEvaluator() searcher.Evaluator {
	return searcher.EvaluatorFunc(func(obs game.Observation) ([]float64, float64) {
		prior := make([]float64, game.NumActions)
		for i := range prior {
			prior[i] = 1.0 / game.NumActions
		}
		return prior, 0
	})
}

func denScenario() *game.GameState {
	gs := game.NewGameState(game.Config{})
	err := gs.Reset(&game.Scenario{
		Name:   "den",
		ToMove: game.Red,
		Pieces: []game.Placement{
			{At: game.Position{Row: 1, Col: 3}, Side: game.Red, Rank: game.Rat},
			{At: game.Position{Row: 7, Col: 0}, Side: game.Green, Rank: game.Elephant},
		},
	})
	if err != nil {
		panic(err)
	}
	return gs
}

var denEntry = game.Move{From: game.Position{Row: 1, Col: 3}, To: game.Position{Row: 0, Col: 3}}

func TestEvaluationAgent(t *testing.T) {
	mcts := searcher.NewMCTS(uniformEvaluator(), searcher.WithSimulations(200), searcher.WithCutoff(30), searcher.WithSeed(7))
	a := NewEvaluationAgent(mcts)

	move, _ := a.FindMove(denScenario())

	require.Equal(t, denEntry, move)
}

func TestTrainingAgent(t *testing.T) {
	t.Run("zero temperature plays the best move", func(t *testing.T) {
		mcts := searcher.NewMCTS(uniformEvaluator(), searcher.WithSimulations(200), searcher.WithCutoff(30), searcher.WithSeed(7))
		a := NewTrainingAgent(mcts, 0, 1)

		move, _ := a.FindMove(denScenario())

		require.Equal(t, denEntry, move)
	})

	t.Run("sampled moves are legal", func(t *testing.T) {
		state := game.NewGameState(game.Config{})
		mcts := searcher.NewMCTS(uniformEvaluator(), searcher.WithSimulations(30), searcher.WithCutoff(10), searcher.WithSeed(3))
		a := NewTrainingAgent(mcts, 1, 5)

		for i := 0; i < 5; i++ {
			move, _ := a.FindMove(state)
			require.True(t, state.IsLegal(move), "%s should be legal", move)
		}
	})
}

func TestSample(t *testing.T) {
	policy := searcher.Policy{9: 0.75, 2: 0.25}

	require.Equal(t, 2, sample(policy, 0))
	require.Equal(t, 2, sample(policy, 0.2))
	require.Equal(t, 9, sample(policy, 0.3))
	require.Equal(t, 9, sample(policy, 0.999999))
	require.Equal(t, 9, sample(policy, 1), "Rounding errors should fall back to the last move")
}

func TestRandomAgent(t *testing.T) {
	state := game.NewGameState(game.Config{})
	a := NewRandomAgent(11)

	for i := 0; i < 20; i++ {
		move, _ := a.FindMove(state)
		require.True(t, state.IsLegal(move))
	}
}
