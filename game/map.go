package game

// Terrain is the static classification of a board cell.
type Terrain int8

const (
	Land Terrain = iota
	River
	Den
	Trap
)

func (t Terrain) String() string {
	switch t {
	case River:
		return "river"
	case Den:
		return "den"
	case Trap:
		return "trap"
	default:
		return "land"
	}
}

// Topology is the static terrain of the board. It never changes during a
// game and is shared by every state built from the same layout.
type Topology struct {
	cells [Rows][Cols]Terrain
	dens  map[Side]Position
}

var standardTopology = newStandardTopology()

// StandardTopology returns the standard 9x7 layout: Green's den at the top
// row, Red's at the bottom, three traps around each den and two 3x2 rivers.
func StandardTopology() *Topology {
	return standardTopology
}

func newStandardTopology() *Topology {
	t := &Topology{
		dens: map[Side]Position{
			Green: {Row: 0, Col: 3},
			Red:   {Row: Rows - 1, Col: 3},
		},
	}
	for _, den := range t.dens {
		t.cells[den.Row][den.Col] = Den
	}
	for _, trap := range []Position{
		{0, 2}, {0, 4}, {1, 3},
		{8, 2}, {8, 4}, {7, 3},
	} {
		t.cells[trap.Row][trap.Col] = Trap
	}
	for row := 3; row <= 5; row++ {
		for _, col := range []int{1, 2, 4, 5} {
			t.cells[row][col] = River
		}
	}
	return t
}

func (t *Topology) At(p Position) Terrain {
	return t.cells[p.Row][p.Col]
}

func (t *Topology) IsRiver(p Position) bool {
	return t.At(p) == River
}

// DenOf returns the den cell belonging to side.
func (t *Topology) DenOf(side Side) Position {
	return t.dens[side]
}

// Owner returns the side whose territory contains a den or trap cell, and
// NoSide for land and river.
func (t *Topology) Owner(p Position) Side {
	switch t.At(p) {
	case Den, Trap:
		if p.Row < Rows/2 {
			return Green
		}
		return Red
	default:
		return NoSide
	}
}
