package searcher

import (
	"jungle/game"
	"math"

	"github.com/samber/lo"
)

// Policy maps encoded moves to probabilities.
type Policy map[int]float64

func uniformPolicy() Policy {
	policy := make(Policy, game.NumActions)
	for action := 0; action < game.NumActions; action++ {
		policy[action] = 1.0 / game.NumActions
	}
	return policy
}

// policy returns the visit fractions of the root's children.
func (t *tree) policy() Policy {
	root := t.root()
	total := lo.SumBy(root.actions, func(action int) int {
		return t.nodes[root.children[action]].visits
	})
	if total == 0 {
		return uniformPolicy()
	}

	policy := make(Policy, len(root.actions))
	for _, action := range root.actions {
		policy[action] = float64(t.nodes[root.children[action]].visits) / float64(total)
	}
	return policy
}

// Temperature rescales every probability to p^(1/temperature) and
// renormalizes. A temperature of zero or less collapses to the best move.
func (p Policy) Temperature(temperature float64) Policy {
	if len(p) == 0 {
		return Policy{}
	}
	if temperature <= 0 {
		return Policy{p.Best(): 1}
	}

	exponent := 1.0 / temperature
	adjusted := lo.MapValues(p, func(prob float64, _ int) float64 {
		return math.Pow(prob, exponent)
	})
	sum := lo.Sum(lo.Values(adjusted))
	if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return Policy{p.Best(): 1}
	}
	for action := range adjusted {
		adjusted[action] /= sum
	}
	return adjusted
}

// Best returns the most probable move. Ties go to the lowest encoding.
func (p Policy) Best() int {
	best := -1
	for action, prob := range p {
		if best == -1 || prob > p[best] || (prob == p[best] && action < best) {
			best = action
		}
	}
	if best == -1 {
		panic("empty policy")
	}
	return best
}

// Dense lays the policy out over the full encoded move space.
func (p Policy) Dense() []float64 {
	dense := make([]float64, game.NumActions)
	for action, prob := range p {
		dense[action] = prob
	}
	return dense
}
