package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/trace"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b grid.Position) float64

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b grid.Position) float64 {
	d := a.Sub(b)
	return math.Abs(float64(d.DRow)) + math.Abs(float64(d.DCol))
}

// Euclidean returns sqrt(Δrow² + Δcol²).
func Euclidean(a, b grid.Position) float64 {
	d := a.Sub(b)
	return math.Hypot(float64(d.DRow), float64(d.DCol))
}

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds parameters for an A* run.
type Options struct {
	// Diagonal enables the four diagonal moves and the Euclidean heuristic.
	Diagonal bool
	// Recorder receives one trace.Frame per expansion. trace.Nop disables it.
	Recorder trace.Recorder
}

// DefaultOptions returns 4-directional movement with tracing disabled.
func DefaultOptions() Options {
	return Options{Diagonal: false, Recorder: trace.Nop}
}

// WithDiagonal enables 8-directional movement.
func WithDiagonal() Option {
	return func(o *Options) {
		o.Diagonal = true
	}
}

// WithDiagonalAllowed sets 8-directional movement from a flag.
func WithDiagonalAllowed(allowed bool) Option {
	return func(o *Options) {
		o.Diagonal = allowed
	}
}

// WithRecorder attaches r to the search. A nil r keeps tracing disabled.
func WithRecorder(r trace.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// connectivity maps the options to a movement model.
func (o Options) connectivity() grid.Connectivity {
	if o.Diagonal {
		return grid.Conn8
	}
	return grid.Conn4
}

// heuristic picks the admissible heuristic for the movement model.
func (o Options) heuristic() Heuristic {
	if o.Diagonal {
		return Euclidean
	}
	return Manhattan
}

// SearchResult holds the outcome of an A* run:
//   - Path:     start→goal inclusive; nil when Found is false.
//   - Found:    whether the goal was reached.
//   - Cost:     accumulated g of the goal (0 when not found).
//   - Expanded: number of non-duplicate pops.
type SearchResult struct {
	Path     path.Path
	Found    bool
	Cost     float64
	Expanded int
}
