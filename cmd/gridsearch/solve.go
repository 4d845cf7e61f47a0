package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/floodfill"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/gridtext"
	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/trace"
)

const (
	algoAStar     = "astar"
	algoFloodFill = "floodfill"
)

// outcome is everything the command prints or animates.
type outcome struct {
	algo   string
	grid   *grid.Grid
	layout grid.Layout
	paths  map[grid.Position]path.Path
	frames []trace.Frame
}

// solve parses the grid and runs the selected search. Frames are only
// recorded when they will be animated.
func solve(r io.Reader, cfg config) (*outcome, error) {
	g, err := gridtext.Parse(r)
	if err != nil {
		return nil, err
	}

	var locOpts []grid.LocateOption
	if cfg.algo == algoAStar {
		locOpts = append(locOpts, grid.WithSingleGoal())
	}
	lay, err := grid.Locate(g, locOpts...)
	if err != nil {
		return nil, err
	}

	var rec trace.Recorder = trace.Nop
	var col *trace.Collector
	if cfg.animate {
		col = trace.NewCollector()
		rec = col
	}

	out := &outcome{algo: cfg.algo, grid: g, layout: lay, paths: map[grid.Position]path.Path{}}
	switch {
	case len(lay.Goals) == 0:
		// nothing to search for
	case cfg.algo == algoFloodFill:
		out.paths, err = floodfill.Search(g, lay.Start, lay.Goals, floodfill.WithRecorder(rec))
	default:
		var (
			p     path.Path
			found bool
		)
		p, found, err = astar.Search(g, lay.Start, lay.Goals[0],
			astar.WithDiagonalAllowed(cfg.diagonal), astar.WithRecorder(rec))
		if found {
			out.paths[lay.Goals[0]] = p
		}
	}
	if err != nil {
		return nil, err
	}
	if col != nil {
		out.frames = col.Frames()
	}

	return out, nil
}

// found returns the paths in goal order.
func (o *outcome) found() []path.Path {
	var ps []path.Path
	for _, goal := range o.layout.Goals {
		if p, ok := o.paths[goal]; ok {
			ps = append(ps, p)
		}
	}
	return ps
}

// print writes each path and the annotated grid, or "no solution".
func (o *outcome) print(w io.Writer) error {
	ps := o.found()
	if len(ps) == 0 {
		_, err := fmt.Fprintln(w, "no solution")
		return err
	}
	for _, p := range ps {
		if _, err := fmt.Fprintf(w, "path to %v (%d moves, cost %.2f): %v\n", p.End(), p.Moves(), p.Cost(), p); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, render.Text(o.grid, ps...))
	return err
}
