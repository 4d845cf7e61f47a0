package grid

import "fmt"

// CellKind enumerates what occupies a single grid cell.
type CellKind uint8

const (
	// Free is an empty, traversable cell.
	Free CellKind = iota
	// Obstacle is never entered by any search.
	Obstacle
	// Start is the cell a search begins from.
	Start
	// Goal is a search target.
	Goal
)

// String returns the single-character form used by the text layers.
func (k CellKind) String() string {
	switch k {
	case Free:
		return "0"
	case Obstacle:
		return "1"
	case Start:
		return "S"
	case Goal:
		return "E"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Traversable reports whether a search may step onto a cell of this kind.
func (k CellKind) Traversable() bool {
	return k != Obstacle
}

// Position is a zero-based (Row, Col) coordinate.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: r, Col: c}.
func Pos(r, c int) Position {
	return Position{Row: r, Col: c}
}

// Add returns p shifted by the delta d.
func (p Position) Add(d Delta) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Sub returns the delta that moves q onto p.
func (p Position) Sub(q Position) Delta {
	return Delta{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Delta is a single movement step.
type Delta struct {
	DRow, DCol int
}

// Diagonal reports whether d moves along both axes.
func (d Delta) Diagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// Connectivity selects the neighbor model.
type Connectivity int

const (
	// Conn4 allows the four orthogonal moves.
	Conn4 Connectivity = iota
	// Conn8 additionally allows the four diagonal moves.
	Conn8
)

var (
	// orthogonal is the fixed enumeration order: up, right, down, left.
	orthogonal = []Delta{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	// diagonal follows the orthogonal moves under Conn8.
	diagonal = []Delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	conn8    = append(append([]Delta{}, orthogonal...), diagonal...)
)

// Deltas returns the movement deltas for c in enumeration order.
// The returned slice must not be modified.
func (c Connectivity) Deltas() []Delta {
	if c == Conn8 {
		return conn8
	}
	return orthogonal
}

// Allows reports whether d is a single permitted move under c.
func (c Connectivity) Allows(d Delta) bool {
	for _, m := range c.Deltas() {
		if m == d {
			return true
		}
	}
	return false
}
