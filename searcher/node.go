package searcher

import "jungle/game"

const noParent = -1

// node is one entry of the search arena. Nodes refer to each other by index
// so the whole tree is released with the arena slice.
type node struct {
	parent   int
	action   int         // encoded move that led here, unset at the root
	children map[int]int // encoded move -> arena index
	actions  []int       // encoded moves in legal-move order
	visits   int
	value    float64 // accumulated, from side's perspective
	mean     float64
	prior    float64
	side     game.Side // side to move at this node
	expanded bool
	terminal bool
}

type tree struct {
	nodes []node
}

func newTree(side game.Side) *tree {
	t := &tree{nodes: make([]node, 0, 1024)}
	t.nodes = append(t.nodes, node{parent: noParent, action: -1, side: side})
	return t
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

// add appends a child under parent and returns its index. Pointers into the
// arena are invalidated by add.
func (t *tree) add(parent, action int, prior float64, side game.Side) int {
	index := len(t.nodes)
	t.nodes = append(t.nodes, node{
		parent: parent,
		action: action,
		prior:  prior,
		side:   side,
	})

	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[int]int)
	}
	p.children[action] = index
	p.actions = append(p.actions, action)
	return index
}

func (t *tree) child(parent, action int) (int, bool) {
	index, ok := t.nodes[parent].children[action]
	return index, ok
}

// selectChild picks the child maximizing PUCT. The child's mean is from the
// child's side to move, so it is negated for the parent. Ties keep the
// earliest child in legal-move order.
func (t *tree) selectChild(parent int, cPuct float64) int {
	p := &t.nodes[parent]
	if len(p.actions) == 0 {
		panic("cannot select from a node without children")
	}

	best := -1
	bestScore := 0.0
	for _, action := range p.actions {
		index := p.children[action]
		c := &t.nodes[index]
		score := puct(-c.mean, c.prior, p.visits, c.visits, cPuct)
		if best == -1 || score > bestScore {
			best = index
			bestScore = score
		}
	}
	return best
}

// backup walks from leaf to the root, adding value to each node and
// flipping its sign at every level.
func (t *tree) backup(leaf int, value float64) {
	for index := leaf; index != noParent; {
		n := &t.nodes[index]
		n.visits++
		n.value += value
		n.mean = n.value / float64(n.visits)
		value = -value
		index = n.parent
	}
}

func (t *tree) depth(index int) int {
	depth := 0
	for t.nodes[index].parent != noParent {
		index = t.nodes[index].parent
		depth++
	}
	return depth
}
