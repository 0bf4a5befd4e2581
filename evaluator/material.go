package evaluator

import "jungle/game"

// Material keeps a uniform prior and values a position by the piece values
// left in each channel of the observation.
type Material struct{}

func (Material) Evaluate(obs game.Observation) ([]float64, float64) {
	var own, opponent float64
	for row := range obs {
		for col := range obs[row] {
			own += codeValue(obs[row][col][0])
			opponent += codeValue(obs[row][col][1])
		}
	}
	if own+opponent == 0 {
		return uniformPrior(), 0
	}
	return uniformPrior(), (own - opponent) / (own + opponent)
}

func codeValue(code int) float64 {
	if code == game.EmptyCode {
		return 0
	}
	return game.PieceValues[game.HighestRank-game.Rank(code)]
}
