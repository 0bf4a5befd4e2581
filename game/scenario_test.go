package game

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadTestScenarios(t *testing.T) map[string]Scenario {
	f, err := os.Open("testdata/scenarios.yaml")
	require.NoError(t, err)
	defer f.Close()

	scenarios, err := LoadScenarios(f)
	require.NoError(t, err)

	byName := make(map[string]Scenario, len(scenarios))
	for _, sc := range scenarios {
		byName[sc.Name] = sc
	}
	return byName
}

func TestLoadScenarios(t *testing.T) {
	scenarios := loadTestScenarios(t)

	tests := []struct {
		name    string
		cfg     Config
		move    Move
		capture Rank
		winner  Side
	}{
		{name: "end-game den win", move: mv(1, 3, 0, 3), winner: Red},
		{name: "capture elephant", move: mv(7, 0, 6, 0), capture: Elephant},
		{name: "lion jump capture", move: mv(4, 0, 4, 3), capture: Tiger},
		{name: "leopard river cross", cfg: Config{ExtendedJumps: true}, move: mv(3, 0, 3, 1), capture: Cat},
		{name: "trap", move: mv(0, 1, 0, 2), capture: Elephant},
	}

	require.Len(t, scenarios, len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, ok := scenarios[tt.name]
			require.True(t, ok)
			gs := NewGameState(tt.cfg)
			require.NoError(t, gs.Reset(&sc))

			capture, err := gs.Apply(tt.move)

			require.NoError(t, err)
			require.Equal(t, tt.capture, capture.Piece.Rank())
			done, winner := gs.Terminal()
			require.Equal(t, tt.winner != NoSide, done)
			require.Equal(t, tt.winner, winner)
		})
	}
}

func TestScenarioValidate(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		require.NoError(t, StandardScenario().Validate())
	})

	t.Run("standard is copied", func(t *testing.T) {
		sc := StandardScenario()
		sc.Pieces[0].Rank = Rat

		require.Equal(t, Lion, StandardScenario().Pieces[0].Rank)
	})

	t.Run("out of bounds", func(t *testing.T) {
		sc := Scenario{Name: "oob", Pieces: []Placement{place(9, 0, Red, Rat)}}

		require.ErrorIs(t, sc.Validate(), ErrOutOfBounds)
	})

	t.Run("duplicate cell", func(t *testing.T) {
		sc := Scenario{Name: "dup", Pieces: []Placement{place(4, 0, Red, Rat), place(4, 0, Green, Cat)}}

		require.ErrorContains(t, sc.Validate(), "two pieces")
	})

	t.Run("missing side", func(t *testing.T) {
		sc := Scenario{Name: "noside", Pieces: []Placement{place(4, 0, NoSide, Rat)}}

		require.Error(t, sc.Validate())
	})

	t.Run("unknown rank in yaml", func(t *testing.T) {
		doc := "- name: bad\n  pieces:\n    - {at: {row: 0, col: 0}, side: red, rank: dragon}\n"

		_, err := LoadScenarios(strings.NewReader(doc))

		require.ErrorContains(t, err, "dragon")
	})
}
