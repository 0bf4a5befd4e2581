package game

import "github.com/rs/zerolog/log"

// Rules answers the terrain-dependent legality questions of the game.
// Variants wrap a predecessor and override only the capabilities they
// change; everything else falls through to the wrapped Rules.
type Rules interface {
	Name() string
	// CanEnterRiver reports whether a piece of rank may stand on the river
	// cell at.
	CanEnterRiver(rank Rank, at Position, b *Board, t *Topology) bool
	// CanJumpOverRiver reports whether from->to is a river jump for rank.
	CanJumpOverRiver(from, to Position, rank Rank, b *Board, t *Topology) bool
	CanCapture(attacker, defender Rank, at Position, t *Topology) bool
	CanMoveToDen(to Position, side Side, rank Rank, t *Topology) bool
	// WinsByDen reports whether a piece of rank ends the game by standing
	// on the enemy den.
	WinsByDen(rank Rank) bool
}

// NewRules composes the rule chain for cfg. The order is fixed: later
// variants shadow earlier ones for the same capability.
func NewRules(cfg Config) Rules {
	var rules Rules = standardRules{}
	if cfg.RatOnlyDenEntry {
		rules = ratOnlyDenEntry{Rules: rules, cfg: cfg}
	}
	if cfg.ExtendedJumps {
		rules = extendedJump{Rules: rules, cfg: cfg}
	}
	if cfg.DogRiverEntry {
		rules = dogRiverEntry{Rules: rules, cfg: cfg}
	}
	if cfg.RatCannotCaptureElephant {
		rules = ratCannotCaptureElephant{Rules: rules, cfg: cfg}
	}

	log.Debug().Strs("chain", Chain(rules)).Msg("composed rule chain")
	return rules
}

// Chain lists the names of every link in the rule chain, innermost first.
func Chain(rules Rules) []string {
	var names []string
	for rules != nil {
		names = append([]string{rules.Name()}, names...)
		rules = base(rules)
	}
	return names
}

func base(rules Rules) Rules {
	switch r := rules.(type) {
	case ratOnlyDenEntry:
		return r.Rules
	case extendedJump:
		return r.Rules
	case dogRiverEntry:
		return r.Rules
	case ratCannotCaptureElephant:
		return r.Rules
	default:
		return nil
	}
}

// ratOnlyDenEntry lets any piece step onto the enemy den, but only the Rat
// wins the game by doing so.
type ratOnlyDenEntry struct {
	Rules
	cfg Config
}

func (ratOnlyDenEntry) Name() string { return "rat_only_den_entry" }

func (v ratOnlyDenEntry) WinsByDen(rank Rank) bool {
	if v.cfg.RatOnlyDenEntry {
		return rank == LowestRank
	}
	return v.Rules.WinsByDen(rank)
}

// extendedJump adds the Lion's jump over both rivers of a row and the
// Leopard's sideways step into and out of a river.
type extendedJump struct {
	Rules
	cfg Config
}

func (extendedJump) Name() string { return "extended_jumps" }

func (v extendedJump) CanJumpOverRiver(from, to Position, rank Rank, b *Board, t *Topology) bool {
	if v.cfg.ExtendedJumps && from.Row == to.Row {
		switch {
		case rank == Lion && abs(from.Col-to.Col) == Cols-1:
			if doubleRiverClear(from.Row, b, t) {
				return true
			}
		case rank == Leopard && abs(from.Col-to.Col) == 1:
			if t.IsRiver(from) || t.IsRiver(to) {
				return true
			}
		}
	}
	return v.Rules.CanJumpOverRiver(from, to, rank, b, t)
}

// doubleRiverClear reports whether row crosses both rivers with no Rat in
// any of its river cells.
func doubleRiverClear(row int, b *Board, t *Topology) bool {
	for _, col := range []int{1, 2, 4, 5} {
		if !t.IsRiver(Position{row, col}) {
			return false
		}
	}
	for col := 1; col < Cols-1; col++ {
		at := Position{row, col}
		if t.IsRiver(at) && b.At(at).Rank() == Rat {
			return false
		}
	}
	return true
}

// dogRiverEntry lets the Dog swim.
type dogRiverEntry struct {
	Rules
	cfg Config
}

func (dogRiverEntry) Name() string { return "dog_river_entry" }

func (v dogRiverEntry) CanEnterRiver(rank Rank, at Position, b *Board, t *Topology) bool {
	if v.cfg.DogRiverEntry && rank == Dog {
		return true
	}
	return v.Rules.CanEnterRiver(rank, at, b, t)
}

// ratCannotCaptureElephant removes the Rat's capture of the Elephant.
type ratCannotCaptureElephant struct {
	Rules
	cfg Config
}

func (ratCannotCaptureElephant) Name() string { return "rat_cannot_capture_highest_rank" }

func (v ratCannotCaptureElephant) CanCapture(attacker, defender Rank, at Position, t *Topology) bool {
	if v.cfg.RatCannotCaptureElephant && attacker == LowestRank && defender == HighestRank {
		// Trap cells still strip the Elephant's protection.
		return t.At(at) == Trap
	}
	return v.Rules.CanCapture(attacker, defender, at, t)
}
