package game

// Board is the grid of piece codes. It is a value type: assigning a Board
// copies every cell.
type Board [Rows][Cols]Piece

func (b *Board) At(p Position) Piece {
	return b[p.Row][p.Col]
}

func (b *Board) Set(p Position, piece Piece) {
	b[p.Row][p.Col] = piece
}

func (b *Board) Clear() {
	*b = Board{}
}

// Count returns the number of pieces side has left.
func (b *Board) Count(side Side) int {
	count := 0
	for row := range b {
		for _, piece := range b[row] {
			if piece.Side() == side {
				count++
			}
		}
	}
	return count
}

// Pieces returns the positions of side's pieces in row-major order.
func (b *Board) Pieces(side Side) []Position {
	var positions []Position
	for row := range b {
		for col, piece := range b[row] {
			if piece.Side() == side {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}
