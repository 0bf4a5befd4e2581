package game

import (
	"fmt"
	"strings"
)

const (
	Rows     = 9
	Cols     = 7
	NumCells = Rows * Cols

	// NumActions is the size of the encoded move space (every from/to pair).
	NumActions = NumCells * NumCells
)

// Side identifies a player. The value doubles as the sign of that player's
// piece codes on the board.
type Side int8

const (
	NoSide Side = 0
	Red    Side = 1
	Green  Side = -1
)

func (s Side) Opponent() Side {
	return -s
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "none"
	}
}

func (s *Side) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "red":
		*s = Red
	case "green":
		*s = Green
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

// Rank is the strength of a piece, from Rat (weakest) to Elephant (strongest).
type Rank int8

const (
	NoRank Rank = iota
	Rat
	Cat
	Dog
	Wolf
	Leopard
	Tiger
	Lion
	Elephant
)

const (
	LowestRank  = Rat
	HighestRank = Elephant
)

var rankNames = [...]string{"none", "rat", "cat", "dog", "wolf", "leopard", "tiger", "lion", "elephant"}

func (r Rank) String() string {
	if r < NoRank || r > Elephant {
		return fmt.Sprintf("rank(%d)", int8(r))
	}
	return rankNames[r]
}

func (r *Rank) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range rankNames[1:] {
		if n == name {
			*r = Rank(i + 1)
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", text)
}

// Piece is the signed storage code of a board cell: the sign is the owning
// side and the magnitude the rank. Zero is an empty cell.
type Piece int8

func NewPiece(side Side, rank Rank) Piece {
	if side == NoSide || rank == NoRank {
		return 0
	}
	return Piece(int8(side) * int8(rank))
}

func (p Piece) Side() Side {
	switch {
	case p > 0:
		return Red
	case p < 0:
		return Green
	default:
		return NoSide
	}
}

func (p Piece) Rank() Rank {
	if p < 0 {
		return Rank(-p)
	}
	return Rank(p)
}

func (p Piece) IsEmpty() bool {
	return p == 0
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the position is for the side to move.
type Evaluate func(*GameState) float64
