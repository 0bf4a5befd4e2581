package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrOutOfBounds   = fmt.Errorf("%w: position out of bounds", ErrInvalidMove)
	ErrNotOwnPiece   = fmt.Errorf("%w: no piece of the side to move", ErrInvalidMove)
	ErrOwnDen        = fmt.Errorf("%w: cannot enter own den", ErrInvalidMove)
	ErrOccupiedByOwn = fmt.Errorf("%w: destination holds own piece", ErrInvalidMove)
	ErrNotAdjacent   = fmt.Errorf("%w: not a single step or river jump", ErrInvalidMove)
	ErrRiverBlocked  = fmt.Errorf("%w: piece cannot enter the river", ErrInvalidMove)
	ErrCannotCapture = fmt.Errorf("%w: piece cannot capture the defender", ErrInvalidMove)
)

// GameState is the canonical game: the board, the side to move and the
// outcome once the game is over. It is mutated in place by Apply.
type GameState struct {
	board  Board
	side   Side
	done   bool
	winner Side
	rules  Rules
	topo   *Topology
}

// Snapshot is the minimal state needed to rebuild a GameState that shares
// the same rules and topology.
type Snapshot struct {
	Board Board
	Side  Side
}

// Capture describes the piece removed by a move, if any.
type Capture struct {
	Piece Piece
	At    Position
}

func (c Capture) Captured() bool {
	return !c.Piece.IsEmpty()
}

// NewGameState initializes a game with the standard layout, Red to move.
func NewGameState(cfg Config) *GameState {
	return NewGameStateWithRules(NewRules(cfg))
}

func NewGameStateWithRules(rules Rules) *GameState {
	gs := &GameState{
		rules: rules,
		topo:  StandardTopology(),
	}
	_ = gs.Reset(nil) // the standard layout always validates
	return gs
}

// Reset clears the board and places the scenario's pieces. A nil scenario
// resets to the standard layout. An invalid scenario leaves the state as it
// was.
func (gs *GameState) Reset(sc *Scenario) error {
	if sc == nil {
		sc = StandardScenario()
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	gs.board.Clear()
	for _, p := range sc.Pieces {
		gs.board.Set(p.At, NewPiece(p.Side, p.Rank))
	}
	gs.side = sc.ToMove
	if gs.side == NoSide {
		gs.side = Red
	}
	gs.done, gs.winner = gs.checkGameOver()
	return nil
}

// Snapshot copies the board and side to move.
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{Board: gs.board, Side: gs.side}
}

// Restore overwrites the board and side to move and recomputes the outcome.
func (gs *GameState) Restore(s Snapshot) {
	gs.board = s.Board
	gs.side = s.Side
	gs.done, gs.winner = gs.checkGameOver()
}

// Copy returns an independent state sharing the immutable rules and topology.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

func (gs *GameState) SideToMove() Side { return gs.side }
func (gs *GameState) Board() Board     { return gs.board }
func (gs *GameState) Rules() Rules     { return gs.rules }
func (gs *GameState) Topology() *Topology {
	return gs.topo
}

func (gs *GameState) At(p Position) Piece {
	return gs.board.At(p)
}

func (gs *GameState) Count(side Side) int {
	return gs.board.Count(side)
}

// Terminal reports whether the game is over and, if so, who won.
func (gs *GameState) Terminal() (bool, Side) {
	return gs.done, gs.winner
}

// IsLegal reports whether the side to move may play m.
func (gs *GameState) IsLegal(m Move) bool {
	return gs.Check(m) == nil
}

// Check validates m for the side to move. Every error wraps ErrInvalidMove.
func (gs *GameState) Check(m Move) error {
	return gs.check(m, gs.side)
}

func (gs *GameState) check(m Move, side Side) error {
	if !m.To.InBounds() || !m.From.InBounds() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, m)
	}

	piece := gs.board.At(m.From)
	if piece.Side() != side {
		return fmt.Errorf("%w: %s", ErrNotOwnPiece, m.From)
	}
	rank := piece.Rank()

	if !gs.rules.CanMoveToDen(m.To, side, rank, gs.topo) {
		return ErrOwnDen
	}

	target := gs.board.At(m.To)
	if target.Side() == side {
		return fmt.Errorf("%w: %s", ErrOccupiedByOwn, m.To)
	}

	if gs.rules.CanJumpOverRiver(m.From, m.To, rank, &gs.board, gs.topo) {
		return gs.checkCapture(rank, target, m.To)
	}

	if !m.isAdjacent() {
		return fmt.Errorf("%w: %s", ErrNotAdjacent, m)
	}

	switch {
	case gs.topo.IsRiver(m.To):
		if !gs.rules.CanEnterRiver(rank, m.To, &gs.board, gs.topo) {
			return fmt.Errorf("%w: %s at %s", ErrRiverBlocked, rank, m.To)
		}
	case gs.topo.IsRiver(m.From):
		if !gs.rules.CanEnterRiver(rank, m.From, &gs.board, gs.topo) {
			return fmt.Errorf("%w: %s at %s", ErrRiverBlocked, rank, m.From)
		}
	}

	return gs.checkCapture(rank, target, m.To)
}

func (gs *GameState) checkCapture(attacker Rank, target Piece, at Position) error {
	if target.IsEmpty() {
		return nil
	}
	if !gs.rules.CanCapture(attacker, target.Rank(), at, gs.topo) {
		return fmt.Errorf("%w: %s takes %s at %s", ErrCannotCapture, attacker, target.Rank(), at)
	}
	return nil
}

// LegalMoves returns every legal move of side in row-major order of the
// moving piece. Adjacent steps and river jumps are always straight, so only
// cells sharing a row or column with the piece are candidates.
func (gs *GameState) LegalMoves(side Side) []Move {
	var moves []Move
	for _, from := range gs.board.Pieces(side) {
		for row := 0; row < Rows; row++ {
			if row == from.Row {
				continue
			}
			m := Move{From: from, To: Position{Row: row, Col: from.Col}}
			if gs.check(m, side) == nil {
				moves = append(moves, m)
			}
		}
		for col := 0; col < Cols; col++ {
			if col == from.Col {
				continue
			}
			m := Move{From: from, To: Position{Row: from.Row, Col: col}}
			if gs.check(m, side) == nil {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Apply plays m for the side to move. An illegal move is rejected with an
// error and leaves the state untouched. Otherwise any captured piece is
// removed, the mover relocated, the outcome recomputed and the turn passed.
func (gs *GameState) Apply(m Move) (Capture, error) {
	if err := gs.Check(m); err != nil {
		return Capture{}, err
	}
	return gs.play(m), nil
}

func (gs *GameState) play(m Move) Capture {
	var capture Capture
	if target := gs.board.At(m.To); !target.IsEmpty() {
		capture = Capture{Piece: target, At: m.To}
	}
	gs.board.Set(m.To, gs.board.At(m.From))
	gs.board.Set(m.From, 0)

	gs.done, gs.winner = gs.checkGameOver()
	gs.side = gs.side.Opponent()
	return capture
}

func (gs *GameState) checkGameOver() (bool, Side) {
	for _, side := range []Side{Red, Green} {
		occupant := gs.board.At(gs.topo.DenOf(side.Opponent()))
		if occupant.Side() == side && gs.rules.WinsByDen(occupant.Rank()) {
			return true, side
		}
	}

	red, green := gs.board.Count(Red), gs.board.Count(Green)
	switch {
	case red == 0 && green == 0:
		return true, NoSide
	case red == 0:
		return true, Green
	case green == 0:
		return true, Red
	}
	return false, NoSide
}

// String renders the board: upper case for Red, lower case for Green,
// '~' river, 'D' den, 'T' trap.
func (gs *GameState) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			at := Position{Row: row, Col: col}
			if piece := gs.board.At(at); !piece.IsEmpty() {
				sb.WriteString(pieceSymbol(piece))
			} else {
				sb.WriteString(terrainSymbol(gs.topo.At(at)))
			}
			if col < Cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "to move: %s", gs.side)
	if gs.done {
		fmt.Fprintf(&sb, ", winner: %s", gs.winner)
	}
	return sb.String()
}

var rankSymbols = [...]string{"", "r", "c", "d", "w", "p", "t", "l", "e"}

func pieceSymbol(p Piece) string {
	symbol := rankSymbols[p.Rank()]
	if p.Side() == Red {
		return strings.ToUpper(symbol)
	}
	return symbol
}

func terrainSymbol(t Terrain) string {
	switch t {
	case River:
		return "~"
	case Den:
		return "D"
	case Trap:
		return "T"
	default:
		return "."
	}
}
