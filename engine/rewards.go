package engine

import "jungle/game"

// Transition is one accepted move as seen by a reward policy.
type Transition struct {
	Mover    game.Side
	Rank     game.Rank
	Move     game.Move
	Capture  game.Capture
	Done     bool
	Winner   game.Side
	Topology *game.Topology
}

// RewardPolicy shapes the scalar reward returned by Env.Step.
type RewardPolicy interface {
	// Reward scores an accepted move from the mover's perspective.
	Reward(t Transition) float64
	// Penalty scores a rejected move.
	Penalty(err error) float64
}

type StandardRewards struct {
	Win         float64
	Loss        float64
	InvalidMove float64
	TowardDen   float64
	PieceValues map[game.Rank]float64

	RatCapturesElephant float64
	Jump                float64
	LeopardRiverCross   float64
}

func NewStandardRewards() StandardRewards {
	return StandardRewards{
		Win:                 100,
		Loss:                -100,
		InvalidMove:         -10,
		TowardDen:           1,
		PieceValues:         game.PieceValues,
		RatCapturesElephant: 10,
		Jump:                2,
		LeopardRiverCross:   1,
	}
}

func (r StandardRewards) Penalty(err error) float64 {
	return r.InvalidMove
}

func (r StandardRewards) Reward(t Transition) float64 {
	if t.Done {
		switch t.Winner {
		case t.Mover:
			return r.Win
		case game.NoSide:
			return 0
		default:
			return r.Loss
		}
	}

	reward := 0.0
	if t.Capture.Captured() {
		captured := t.Capture.Piece.Rank()
		reward += r.PieceValues[captured]
		if t.Rank == game.LowestRank && captured == game.HighestRank {
			reward += r.RatCapturesElephant
		}
	}

	from, to := t.Move.From, t.Move.To
	distance := abs(from.Row-to.Row) + abs(from.Col-to.Col)
	if (t.Rank == game.Lion || t.Rank == game.Tiger) && distance > 1 {
		reward += r.Jump
	}
	if t.Rank == game.Leopard && (t.Topology.IsRiver(from) || t.Topology.IsRiver(to)) {
		reward += r.LeopardRiverCross
	}

	den := t.Topology.DenOf(t.Mover.Opponent())
	if manhattan(to, den) < manhattan(from, den) {
		reward += r.TowardDen
	}
	return reward
}

func manhattan(a, b game.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
