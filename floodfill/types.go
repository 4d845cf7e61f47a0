package floodfill

import (
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/trace"
)

// Sentinel errors for flood fill execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("floodfill: grid is nil")
)

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds parameters for a flood fill run.
type Options struct {
	// Recorder receives one trace.Frame per dequeue. trace.Nop disables it.
	Recorder trace.Recorder
}

// DefaultOptions returns Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Recorder: trace.Nop}
}

// WithRecorder attaches r to the search. A nil r keeps tracing disabled.
func WithRecorder(r trace.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// SearchResult holds the outcome of a flood fill:
//   - Paths: one shortest path per reached goal.
//   - Distance: hop distance from start of every discovered cell.
//   - Expanded: number of dequeued cells.
type SearchResult struct {
	Paths    map[grid.Position]path.Path
	Distance map[grid.Position]int
	Expanded int
}

// Reached reports whether goal was reached.
func (r SearchResult) Reached(goal grid.Position) bool {
	_, ok := r.Paths[goal]
	return ok
}
