package engine

import (
	"jungle/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func place(row, col int, side game.Side, rank game.Rank) game.Placement {
	return game.Placement{At: game.Position{Row: row, Col: col}, Side: side, Rank: rank}
}

func mv(fromRow, fromCol, toRow, toCol int) game.Move {
	return game.Move{From: game.Position{Row: fromRow, Col: fromCol}, To: game.Position{Row: toRow, Col: toCol}}
}

func TestEnvStep(t *testing.T) {
	t.Run("corner step toward the enemy den", func(t *testing.T) {
		env := NewEnv(game.Config{})
		env.Reset(nil)

		obs, reward, done, info := env.Step(mv(8, 0, 7, 0))

		require.False(t, done)
		require.Equal(t, 1.0, reward, "Stepping closer to the enemy den earns the shaping bonus")
		require.Equal(t, 1, info["steps"])
		require.Equal(t, game.Green, env.State().SideToMove())
		require.Equal(t, env.State().Observation(game.Green), obs, "Observation should be for the next side to move")
	})

	t.Run("invalid move ends the episode untouched", func(t *testing.T) {
		env := NewEnv(game.Config{})
		env.Reset(nil)
		before := env.State().Snapshot()

		_, reward, done, info := env.Step(mv(0, 0, 1, 0))

		require.True(t, done)
		require.Equal(t, -10.0, reward)
		require.Contains(t, info["message"], "no piece of the side to move")
		require.ErrorIs(t, info["error"].(error), game.ErrNotOwnPiece)
		require.Equal(t, before, env.State().Snapshot())
	})

	t.Run("invalid move can keep the episode going", func(t *testing.T) {
		env := NewEnv(game.Config{}, WithInvalidMoveTerminates(false))
		env.Reset(nil)

		_, reward, done, _ := env.Step(mv(8, 0, 9, 0))

		require.False(t, done)
		require.Equal(t, -10.0, reward)
		require.Equal(t, game.Red, env.State().SideToMove())
	})

	t.Run("den entry wins", func(t *testing.T) {
		env := NewEnv(game.Config{})
		_, err := env.Reset(&game.Scenario{ToMove: game.Red, Pieces: []game.Placement{
			place(1, 3, game.Red, game.Rat),
			place(7, 3, game.Green, game.Elephant),
		}})
		require.NoError(t, err)

		_, reward, done, info := env.Step(mv(1, 3, 0, 3))

		require.True(t, done)
		require.Equal(t, 100.0, reward)
		require.Equal(t, game.Red, info["winner"])

		_, reward, done, info = env.Step(mv(7, 3, 6, 3))

		require.True(t, done)
		require.Equal(t, 0.0, reward)
		require.Equal(t, "game is over", info["message"])
	})
}

func TestEnvReset(t *testing.T) {
	env := NewEnv(game.Config{})
	obs, err := env.Reset(nil)
	require.NoError(t, err)
	require.Equal(t, env.State().Observation(game.Red), obs)
	env.Step(mv(8, 0, 7, 0))

	_, err = env.Reset(&game.Scenario{Name: "off board", Pieces: []game.Placement{place(9, 0, game.Red, game.Rat)}})

	require.ErrorIs(t, err, game.ErrOutOfBounds)
	require.Equal(t, game.Green, env.State().SideToMove(), "A rejected scenario keeps the running episode")
	require.Equal(t, game.NewPiece(game.Red, game.Tiger), env.State().At(game.Position{Row: 7, Col: 0}))
}

func TestStandardRewards(t *testing.T) {
	tests := []struct {
		name   string
		cfg    game.Config
		toMove game.Side
		pieces []game.Placement
		move   game.Move
		reward float64
	}{
		{
			name:   "rat takes elephant",
			toMove: game.Red,
			pieces: []game.Placement{
				place(7, 0, game.Red, game.Rat),
				place(6, 0, game.Green, game.Elephant),
				place(0, 0, game.Green, game.Lion),
				place(8, 6, game.Red, game.Lion),
			},
			move:   mv(7, 0, 6, 0),
			reward: 8 + 10 + 1,
		},
		{
			name:   "lion jump capture",
			toMove: game.Red,
			pieces: []game.Placement{
				place(4, 0, game.Red, game.Lion),
				place(4, 3, game.Green, game.Tiger),
				place(0, 0, game.Green, game.Lion),
			},
			move:   mv(4, 0, 4, 3),
			reward: 6 + 2 + 1,
		},
		{
			name:   "leopard river cross",
			cfg:    game.Config{ExtendedJumps: true},
			toMove: game.Green,
			pieces: []game.Placement{
				place(3, 0, game.Green, game.Leopard),
				place(3, 1, game.Red, game.Cat),
				place(8, 6, game.Red, game.Lion),
			},
			move:   mv(3, 0, 3, 1),
			reward: 2 + 1 + 1,
		},
		{
			name:   "step away from the den",
			toMove: game.Red,
			pieces: []game.Placement{
				place(6, 3, game.Red, game.Wolf),
				place(0, 0, game.Green, game.Lion),
			},
			move:   mv(6, 3, 6, 4),
			reward: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(tt.cfg)
			_, err := env.Reset(&game.Scenario{Name: tt.name, ToMove: tt.toMove, Pieces: tt.pieces})
			require.NoError(t, err)

			_, reward, done, _ := env.Step(tt.move)

			require.False(t, done)
			require.Equal(t, tt.reward, reward)
		})
	}
}

func TestStandardRewardsOutcome(t *testing.T) {
	rewards := NewStandardRewards()
	finished := Transition{Mover: game.Red, Done: true, Topology: game.StandardTopology()}

	finished.Winner = game.Red
	require.Equal(t, 100.0, rewards.Reward(finished))
	finished.Winner = game.Green
	require.Equal(t, -100.0, rewards.Reward(finished))
	finished.Winner = game.NoSide
	require.Equal(t, 0.0, rewards.Reward(finished))
}

type fixedRewards struct{}

func (fixedRewards) Reward(t Transition) float64 { return 0.5 }
func (fixedRewards) Penalty(err error) float64   { return -0.5 }

func TestWithRewardPolicy(t *testing.T) {
	env := NewEnv(game.Config{}, WithRewardPolicy(fixedRewards{}))
	env.Reset(nil)

	_, reward, _, _ := env.Step(mv(8, 0, 7, 0))
	require.Equal(t, 0.5, reward)

	_, reward, _, _ = env.Step(mv(8, 6, 7, 6))
	require.Equal(t, -0.5, reward, "Red's lion cannot move on Green's turn")
}

func TestLegalActions(t *testing.T) {
	env := NewEnv(game.Config{})
	env.Reset(nil)

	actions := env.LegalActions()

	require.Len(t, actions, len(env.State().LegalMoves(game.Red)))
	for _, action := range actions {
		require.True(t, env.State().IsLegal(game.DecodeMove(action)))
	}
}
