package game

import "fmt"

// Position is a board cell. Valid positions satisfy 0 <= Row < Rows and
// 0 <= Col < Cols.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Index flattens the position to row*Cols + col.
func (p Position) Index() int {
	return p.Row*Cols + p.Col
}

func PositionFromIndex(index int) Position {
	return Position{Row: index / Cols, Col: index % Cols}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move relocates the piece on From to To.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// isAdjacent reports a single orthogonal step.
func (m Move) isAdjacent() bool {
	return abs(m.From.Row-m.To.Row)+abs(m.From.Col-m.To.Col) == 1
}

// EncodeMove maps a move to an integer in [0, NumActions).
func EncodeMove(m Move) int {
	return m.From.Index()*NumCells + m.To.Index()
}

// DecodeMove is the inverse of EncodeMove. The result is not necessarily a
// legal move.
func DecodeMove(action int) Move {
	if action < 0 || action >= NumActions {
		panic(fmt.Sprintf("action %d outside encoded move space", action))
	}
	return Move{
		From: PositionFromIndex(action / NumCells),
		To:   PositionFromIndex(action % NumCells),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
