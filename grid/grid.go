package grid

import "fmt"

// Grid is a rectangular matrix of CellKind. It is never mutated after
// construction, so any number of searches may read it concurrently.
type Grid struct {
	rows, cols int
	cells      [][]CellKind
}

// New constructs a Grid from a non-empty, rectangular matrix.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]CellKind) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	cp := make([][]CellKind, rows)
	for r := range cells {
		cp[r] = make([]CellKind, cols)
		copy(cp[r], cells[r])
	}

	return &Grid{rows: rows, cols: cols, cells: cp}, nil
}

// FromInts builds a Grid from the integer encoding 0=Free, 1=Obstacle,
// 2=Start, 3=Goal. Any other value yields ErrUnknownCell.
func FromInts(values [][]int) (*Grid, error) {
	cells := make([][]CellKind, len(values))
	for r, row := range values {
		cells[r] = make([]CellKind, len(row))
		for c, v := range row {
			if v < int(Free) || v > int(Goal) {
				return nil, fmt.Errorf("%w: %d at %v", ErrUnknownCell, v, Pos(r, c))
			}
			cells[r][c] = CellKind(v)
		}
	}

	return New(cells)
}

// MustFromInts is like FromInts but panics on error. Intended for tests
// and fixed example layouts.
func MustFromInts(values [][]int) *Grid {
	g, err := FromInts(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the kind of the cell at p. Out-of-bounds positions report
// Obstacle so that callers can treat the border as a wall.
func (g *Grid) At(p Position) CellKind {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[p.Row][p.Col]
}

// Passable reports whether p is inside the grid and not an Obstacle.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col].Traversable()
}

// Neighbors appends to dst every passable neighbor of p under conn,
// in the connectivity's enumeration order, and returns the extended slice.
// Passing a reused dst[:0] keeps the search loops allocation-free.
func (g *Grid) Neighbors(dst []Position, p Position, conn Connectivity) []Position {
	for _, d := range conn.Deltas() {
		if q := p.Add(d); g.Passable(q) {
			dst = append(dst, q)
		}
	}
	return dst
}

// Cells returns a deep copy of the underlying matrix.
func (g *Grid) Cells() [][]CellKind {
	out := make([][]CellKind, g.rows)
	for r := range g.cells {
		out[r] = make([]CellKind, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Position, k CellKind)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(Position{Row: r, Col: c}, g.cells[r][c])
		}
	}
}

// Index maps p to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
