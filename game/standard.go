package game

// standardRules is the base of every rule chain.
type standardRules struct{}

func (standardRules) Name() string { return "standard" }

// Only the Rat swims.
func (standardRules) CanEnterRiver(rank Rank, at Position, b *Board, t *Topology) bool {
	return rank == Rat
}

// Lion and Tiger leap straight across a river from one bank to the other
// when every cell in between is river and no Rat (of either side) sits in
// the way.
func (standardRules) CanJumpOverRiver(from, to Position, rank Rank, b *Board, t *Topology) bool {
	if rank != Lion && rank != Tiger {
		return false
	}
	if t.IsRiver(from) || t.IsRiver(to) {
		return false
	}

	var step Position
	switch {
	case from.Row == to.Row && abs(from.Col-to.Col) > 1:
		step = Position{Col: sign(to.Col - from.Col)}
	case from.Col == to.Col && abs(from.Row-to.Row) > 1:
		step = Position{Row: sign(to.Row - from.Row)}
	default:
		return false
	}

	for at := (Position{from.Row + step.Row, from.Col + step.Col}); at != to; at = (Position{at.Row + step.Row, at.Col + step.Col}) {
		if !t.IsRiver(at) {
			return false
		}
		if b.At(at).Rank() == Rat {
			return false
		}
	}
	return true
}

func (standardRules) CanCapture(attacker, defender Rank, at Position, t *Topology) bool {
	if t.At(at) == Trap {
		return true
	}
	if attacker >= defender {
		return true
	}
	return attacker == LowestRank && defender == HighestRank
}

// No piece may enter its own den.
func (standardRules) CanMoveToDen(to Position, side Side, rank Rank, t *Topology) bool {
	return !(t.At(to) == Den && t.DenOf(side) == to)
}

func (standardRules) WinsByDen(rank Rank) bool {
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
