package game

const (
	Channels = 2

	// EmptyCode marks a cell holding no piece of the channel's side.
	EmptyCode = 8
)

// Observation is the evaluator input: channel 0 holds the observing side's
// pieces, channel 1 the opponent's. A piece is encoded as 8-rank, so the
// Elephant is 0 and the Rat 7.
type Observation [Rows][Cols][Channels]int

// Observation encodes the board from side's point of view.
func (gs *GameState) Observation(side Side) Observation {
	var obs Observation
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			obs[row][col] = [Channels]int{EmptyCode, EmptyCode}
			piece := gs.board[row][col]
			switch piece.Side() {
			case side:
				obs[row][col][0] = pieceCode(piece)
			case side.Opponent():
				obs[row][col][1] = pieceCode(piece)
			}
		}
	}
	return obs
}

func pieceCode(p Piece) int {
	return int(HighestRank - p.Rank())
}

// Flatten lays the tensor out row-major, channels innermost, scaled to
// [0, 1].
func (o *Observation) Flatten() []float64 {
	flat := make([]float64, 0, Rows*Cols*Channels)
	for row := range o {
		for col := range o[row] {
			for ch := range o[row][col] {
				flat = append(flat, float64(o[row][col][ch])/EmptyCode)
			}
		}
	}
	return flat
}
