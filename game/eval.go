package game

import "github.com/samber/lo"

// PieceValues weighs each rank for material scoring.
var PieceValues = map[Rank]float64{
	Rat:      1,
	Cat:      2,
	Dog:      3,
	Wolf:     4,
	Leopard:  5,
	Tiger:    6,
	Lion:     7,
	Elephant: 8,
}

// EvaluateDraw scores every position as even.
func EvaluateDraw(gs *GameState) float64 {
	return 0
}

// EvaluateMaterial compares the remaining piece values of both sides to
// produce a score between -1 and 1 from the side to move's perspective.
func EvaluateMaterial(gs *GameState) float64 {
	if done, winner := gs.Terminal(); done {
		return Outcome(winner, gs.side)
	}
	current := material(&gs.board, gs.side)
	opponent := material(&gs.board, gs.side.Opponent())
	return normalize(current, opponent)
}

// EvaluateMaterialAdvance adds how close each side's pieces are to the
// enemy den to the material score.
func EvaluateMaterialAdvance(gs *GameState) float64 {
	if done, winner := gs.Terminal(); done {
		return Outcome(winner, gs.side)
	}
	materialScore := normalize(material(&gs.board, gs.side), material(&gs.board, gs.side.Opponent()))
	advanceScore := normalize(gs.advance(gs.side), gs.advance(gs.side.Opponent()))
	return (materialScore + advanceScore) / 2
}

func material(b *Board, side Side) float64 {
	return lo.SumBy(b.Pieces(side), func(p Position) float64 {
		return PieceValues[b.At(p).Rank()]
	})
}

// advance sums, over side's pieces, how many rows each has covered toward
// the enemy den.
func (gs *GameState) advance(side Side) float64 {
	den := gs.topo.DenOf(side.Opponent())
	return lo.SumBy(gs.board.Pieces(side), func(p Position) float64 {
		return float64(Rows - abs(den.Row-p.Row))
	})
}

// Outcome scores a finished game for perspective: 1 win, -1 loss, 0 draw.
func Outcome(winner, perspective Side) float64 {
	switch winner {
	case perspective:
		return 1
	case NoSide:
		return 0
	default:
		return -1
	}
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
