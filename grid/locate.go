package grid

import "fmt"

// Layout is the outcome of Locate: the unique Start cell and every Goal
// cell in row-major order. An empty Goals slice means no solution is
// possible; it is not an error.
type Layout struct {
	Start Position
	Goals []Position
}

// LocateOptions configures Locate.
type LocateOptions struct {
	// SingleGoal rejects layouts with more than one Goal cell.
	SingleGoal bool
}

// LocateOption configures Locate via functional arguments.
type LocateOption func(*LocateOptions)

// WithSingleGoal enables single-goal mode: more than one Goal cell
// yields ErrInvalidLayout. Used by A*, which searches for one target.
func WithSingleGoal() LocateOption {
	return func(o *LocateOptions) {
		o.SingleGoal = true
	}
}

// Locate scans every cell of g exactly once and returns its Start and Goal
// positions.
//
// Errors (all wrap ErrInvalidLayout):
//   - no Start cell;
//   - more than one Start cell;
//   - more than one Goal cell when WithSingleGoal is set.
//
// Complexity: O(R×C) time.
func Locate(g *Grid, opts ...LocateOption) (Layout, error) {
	var o LocateOptions
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return Layout{}, ErrEmptyGrid
	}

	var (
		lay    Layout
		starts int
	)
	g.Each(func(p Position, k CellKind) {
		switch k {
		case Start:
			if starts == 0 {
				lay.Start = p
			}
			starts++
		case Goal:
			lay.Goals = append(lay.Goals, p)
		}
	})

	switch {
	case starts == 0:
		return Layout{}, fmt.Errorf("%w: no start cell", ErrInvalidLayout)
	case starts > 1:
		return Layout{}, fmt.Errorf("%w: %d start cells, want exactly one", ErrInvalidLayout, starts)
	case o.SingleGoal && len(lay.Goals) > 1:
		return Layout{}, fmt.Errorf("%w: %d goal cells, want at most one", ErrInvalidLayout, len(lay.Goals))
	}

	return lay, nil
}
