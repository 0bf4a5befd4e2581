package game

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Placement puts one piece on the board.
type Placement struct {
	At   Position `yaml:"at"`
	Side Side     `yaml:"side"`
	Rank Rank     `yaml:"rank"`
}

// Scenario is a named starting position.
type Scenario struct {
	Name   string      `yaml:"name"`
	ToMove Side        `yaml:"to_move"`
	Pieces []Placement `yaml:"pieces"`
}

var standardScenario = Scenario{
	Name:   "standard",
	ToMove: Red,
	Pieces: []Placement{
		{At: Position{0, 0}, Side: Green, Rank: Lion},
		{At: Position{0, 6}, Side: Green, Rank: Tiger},
		{At: Position{1, 1}, Side: Green, Rank: Dog},
		{At: Position{1, 5}, Side: Green, Rank: Cat},
		{At: Position{2, 0}, Side: Green, Rank: Rat},
		{At: Position{2, 2}, Side: Green, Rank: Leopard},
		{At: Position{2, 4}, Side: Green, Rank: Wolf},
		{At: Position{2, 6}, Side: Green, Rank: Elephant},

		{At: Position{8, 0}, Side: Red, Rank: Tiger},
		{At: Position{8, 6}, Side: Red, Rank: Lion},
		{At: Position{7, 1}, Side: Red, Rank: Cat},
		{At: Position{7, 5}, Side: Red, Rank: Dog},
		{At: Position{6, 0}, Side: Red, Rank: Elephant},
		{At: Position{6, 2}, Side: Red, Rank: Wolf},
		{At: Position{6, 4}, Side: Red, Rank: Leopard},
		{At: Position{6, 6}, Side: Red, Rank: Rat},
	},
}

// StandardScenario returns the standard opening layout, Red to move.
func StandardScenario() *Scenario {
	sc := standardScenario
	sc.Pieces = append([]Placement(nil), standardScenario.Pieces...)
	return &sc
}

// Validate checks bounds, piece identities and that no cell is used twice.
func (sc *Scenario) Validate() error {
	seen := make(map[Position]bool, len(sc.Pieces))
	for _, p := range sc.Pieces {
		if !p.At.InBounds() {
			return fmt.Errorf("scenario %q: %w: %s", sc.Name, ErrOutOfBounds, p.At)
		}
		if p.Side == NoSide || p.Rank < LowestRank || p.Rank > HighestRank {
			return fmt.Errorf("scenario %q: invalid piece at %s", sc.Name, p.At)
		}
		if seen[p.At] {
			return fmt.Errorf("scenario %q: two pieces on %s", sc.Name, p.At)
		}
		seen[p.At] = true
	}
	return nil
}

// LoadScenarios decodes a YAML list of scenarios and validates each one.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	if err := yaml.NewDecoder(r).Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios: %w", err)
	}
	for i := range scenarios {
		if err := scenarios[i].Validate(); err != nil {
			return nil, err
		}
	}
	return scenarios, nil
}
