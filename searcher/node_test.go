package searcher

import (
	"jungle/game"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackup(t *testing.T) {
	tr := newTree(game.Red)
	child := tr.add(0, 10, 0.5, game.Green)
	grandchild := tr.add(child, 20, 0.5, game.Red)

	tr.backup(grandchild, 1)

	require.Equal(t, 1.0, tr.nodes[grandchild].value)
	require.Equal(t, -1.0, tr.nodes[child].value, "Value should flip sign for the parent")
	require.Equal(t, 1.0, tr.nodes[0].value)
	for _, index := range []int{0, child, grandchild} {
		require.Equal(t, 1, tr.nodes[index].visits)
	}

	tr.backup(child, 1)

	require.Equal(t, 2, tr.nodes[child].visits)
	require.Equal(t, 0.0, tr.nodes[child].mean)
	require.Equal(t, 0.0, tr.nodes[0].mean)
	require.Equal(t, 2, tr.depth(grandchild))
}

func TestSelectChild(t *testing.T) {
	t.Run("unvisited child first", func(t *testing.T) {
		tr := newTree(game.Red)
		visited := tr.add(0, 1, 0.9, game.Green)
		unvisited := tr.add(0, 2, 0.1, game.Green)
		tr.backup(visited, -1)

		require.Equal(t, unvisited, tr.selectChild(0, DefaultCPuct))
	})

	t.Run("negated child mean", func(t *testing.T) {
		tr := newTree(game.Red)
		losing := tr.add(0, 1, 0.5, game.Green)
		winning := tr.add(0, 2, 0.5, game.Green)
		tr.backup(losing, 1)   // good for Green
		tr.backup(winning, -1) // bad for Green

		require.Equal(t, winning, tr.selectChild(0, DefaultCPuct))
	})

	t.Run("ties keep legal-move order", func(t *testing.T) {
		tr := newTree(game.Red)
		first := tr.add(0, 7, 0.5, game.Green)
		second := tr.add(0, 3, 0.5, game.Green)
		tr.backup(first, 0)
		tr.backup(second, 0)

		require.Equal(t, first, tr.selectChild(0, DefaultCPuct))
	})

	t.Run("panics without children", func(t *testing.T) {
		tr := newTree(game.Red)

		require.Panics(t, func() { tr.selectChild(0, DefaultCPuct) })
	})
}

func TestPUCT(t *testing.T) {
	t.Run("unvisited", func(t *testing.T) {
		require.Equal(t, math.Inf(1), puct(0, 0.1, 10, 0, 1))
	})

	t.Run("computing PUCT value", func(t *testing.T) {
		got := puct(0.5, 0.2, 100, 4, 1.5)

		require.InDelta(t, 0.5+1.5*0.2*10/5.0, got, 1e-9)
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		require.Greater(t, puct(0, 0.5, 100, 1, 1), puct(0, 0.5, 100, 10, 1))
	})

	t.Run("exploration term increases with prior", func(t *testing.T) {
		require.Greater(t, puct(0, 0.9, 100, 5, 1), puct(0, 0.1, 100, 5, 1))
	})
}
