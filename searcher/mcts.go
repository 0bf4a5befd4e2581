package searcher

import (
	"fmt"
	"jungle/experiments/metrics"
	"jungle/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS is a single-threaded PUCT search guided by an Evaluator. Every call
// to Simulate builds a fresh tree.
type MCTS struct {
	evaluator   Evaluator
	simulations int
	cPuct       float64
	cutoff      int
	evaluate    game.Evaluate
	valueWeight float64
	rng         *rand.Rand
	metrics     metrics.Collector
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

func WithCPuct(cPuct float64) Option {
	return func(m *MCTS) {
		if cPuct >= 0 {
			m.cPuct = cPuct
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithEvaluationFn scores rollouts that reach the cutoff.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithValueWeight blends the evaluator's value into each leaf outcome:
// (1-weight)*rollout + weight*value.
func WithValueWeight(weight float64) Option {
	return func(m *MCTS) {
		if weight >= 0 && weight <= 1 {
			m.valueWeight = weight
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(evaluator Evaluator, options ...Option) *MCTS {
	if evaluator == nil {
		panic("MCTS requires an evaluator")
	}
	m := &MCTS{ // Default values
		evaluator:   evaluator,
		simulations: DefaultSimulations,
		cPuct:       DefaultCPuct,
		cutoff:      MaxCutoff,
		evaluate:    game.EvaluateDraw,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Simulate runs the configured number of simulations from state and returns
// the visit distribution over the root's moves. state is not modified.
func (m *MCTS) Simulate(state *game.GameState) (Policy, metrics.SearchMetric) {
	root := state.Snapshot()
	t := newTree(state.SideToMove())
	sim := state.Copy()

	m.metrics.Start(m.simulations, m.cutoff)
	if done, _ := sim.Terminal(); done {
		t.root().terminal = true
	} else {
		m.expand(t, 0, sim)
	}

	for i := 0; i < m.simulations; i++ {
		sim.Restore(root)
		m.simulate(t, sim)
		m.metrics.AddEpisode()
	}
	metric := m.metrics.Complete(len(t.nodes))

	policy := t.policy()
	log.Debug().
		Int("simulations", m.simulations).
		Int("tree", len(t.nodes)).
		Int("moves", len(t.root().actions)).
		Msg("search complete")
	return policy, metric
}

func (m *MCTS) simulate(t *tree, sim *game.GameState) {
	leaf := m.descend(t, sim)
	m.metrics.AddDepth(t.depth(leaf))
	value := m.evaluateLeaf(t, leaf, sim)
	t.backup(leaf, value)
}

// descend follows PUCT from the root, replaying each move on sim, until it
// reaches a node that is unexpanded, terminal or childless.
func (m *MCTS) descend(t *tree, sim *game.GameState) int {
	index := 0
	for {
		n := &t.nodes[index]
		if n.terminal || !n.expanded || len(n.actions) == 0 {
			return index
		}
		child := t.selectChild(index, m.cPuct)
		move := game.DecodeMove(t.nodes[child].action)
		if _, err := sim.Apply(move); err != nil {
			panic(fmt.Sprintf("tree move %s is illegal: %v", move, err))
		}
		index = child
	}
}

// evaluateLeaf returns the leaf's outcome from its side to move's
// perspective.
func (m *MCTS) evaluateLeaf(t *tree, leaf int, sim *game.GameState) float64 {
	side := t.nodes[leaf].side
	if done, winner := sim.Terminal(); done {
		t.nodes[leaf].terminal = true
		return game.Outcome(winner, side)
	}
	if t.nodes[leaf].expanded {
		// Expanded without children: the side to move is stuck.
		return 0
	}

	value := m.expand(t, leaf, sim)
	outcome := m.rollout(sim, side)
	return (1-m.valueWeight)*outcome + m.valueWeight*value
}

// expand adds one child per legal move, seeded with the evaluator's prior,
// and returns the evaluator's value of the position.
func (m *MCTS) expand(t *tree, index int, sim *game.GameState) float64 {
	side := sim.SideToMove()
	prior, value := evaluate(m.evaluator, sim.Observation(side))
	for _, move := range sim.LegalMoves(side) {
		action := game.EncodeMove(move)
		t.add(index, action, prior[action], side.Opponent())
	}
	t.nodes[index].expanded = true
	return value
}

// rollout plays uniformly random moves until the game ends, the side to
// move is stuck or the cutoff is reached. The result is scored for
// perspective.
func (m *MCTS) rollout(sim *game.GameState, perspective game.Side) float64 {
	for depth := 0; ; depth++ {
		if done, winner := sim.Terminal(); done {
			m.metrics.AddFullPlayout()
			return game.Outcome(winner, perspective)
		}
		if depth >= m.cutoff {
			score := clamp(m.evaluate(sim))
			if sim.SideToMove() != perspective {
				score = -score
			}
			return score
		}

		moves := sim.LegalMoves(sim.SideToMove())
		if len(moves) == 0 {
			return 0
		}
		move := moves[m.rng.Intn(len(moves))] // Random rollout policy
		if _, err := sim.Apply(move); err != nil {
			panic(fmt.Sprintf("rollout move %s is illegal: %v", move, err))
		}
	}
}
