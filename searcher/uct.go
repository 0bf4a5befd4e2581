package searcher

import "math"

// puct = q + c*P*sqrt(N)/(1+n). Unvisited children are always tried first.
func puct(q, prior float64, parentVisits, visits int, cPuct float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return q + cPuct*prior*math.Sqrt(float64(parentVisits))/float64(1+visits)
}
