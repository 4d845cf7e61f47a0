// Package path rebuilds and inspects routes produced by the grid searches.
//
// A Path runs from the start cell to a target, inclusive of both ends.
// A single-position Path is legitimate (start equals target); "no path"
// is always reported separately by the searches, never as an empty Path.
package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by Validate.
var (
	// ErrEmptyPath is returned when validating a path with no positions.
	ErrEmptyPath = errors.New("path: empty path")

	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("path: position out of bounds")

	// ErrObstacle is returned when a position is an Obstacle cell.
	ErrObstacle = errors.New("path: position is an obstacle")

	// ErrInvalidStep is returned when two consecutive positions are not
	// one permitted move apart.
	ErrInvalidStep = errors.New("path: invalid step")
)

// Path is an ordered sequence of positions from start to target.
type Path []grid.Position

// Reconstruct walks cameFrom backward from target until it reaches a
// position without a predecessor (the start), then reverses the walk so
// the result runs start→target inclusive.
//
// If target was never discovered the walk stops immediately and the
// result is [target]; callers check discovery first.
//
// Complexity: O(L) for a path of length L.
func Reconstruct(cameFrom map[grid.Position]grid.Position, target grid.Position) Path {
	p := Path{target}
	for cur := target; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		p = append(p, prev)
		cur = prev
	}
	// reverse to get start → target
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// Len returns the number of positions, both endpoints included.
func (p Path) Len() int { return len(p) }

// Moves returns the number of steps, i.e. Len()-1 (0 for an empty path).
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first position. It panics on an empty path.
func (p Path) Start() grid.Position { return p[0] }

// End returns the last position. It panics on an empty path.
func (p Path) End() grid.Position { return p[len(p)-1] }

// Cost sums step costs: 1 per orthogonal move, √2 per diagonal move.
func (p Path) Cost() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += StepCost(p[i].Sub(p[i-1]))
	}
	return total
}

// StepCost is the cost of a single move d: √2 for diagonals, 1 otherwise.
func StepCost(d grid.Delta) float64 {
	if d.Diagonal() {
		return math.Sqrt2
	}
	return 1
}

// Contains reports whether q lies on the path.
func (p Path) Contains(q grid.Position) bool {
	for _, x := range p {
		if x == q {
			return true
		}
	}
	return false
}

// Validate checks that every position of p is inside g and not an
// Obstacle, and that consecutive positions differ by exactly one move
// permitted under conn.
func (p Path) Validate(g *grid.Grid, conn grid.Connectivity) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	for i, q := range p {
		if !g.InBounds(q) {
			return fmt.Errorf("%w: %v at index %d", ErrOutOfBounds, q, i)
		}
		if g.At(q) == grid.Obstacle {
			return fmt.Errorf("%w: %v at index %d", ErrObstacle, q, i)
		}
		if i > 0 && !conn.Allows(q.Sub(p[i-1])) {
			return fmt.Errorf("%w: %v→%v", ErrInvalidStep, p[i-1], q)
		}
	}
	return nil
}
