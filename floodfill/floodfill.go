package floodfill

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/trace"
)

// Search runs a multi-target flood fill on g from start and returns one
// shortest path per reachable goal. Unreachable goals are absent from the
// map. Returns ErrNilGrid for a nil grid.
func Search(g *grid.Grid, start grid.Position, goals []grid.Position, opts ...Option) (map[grid.Position]path.Path, error) {
	res, err := Run(g, start, goals, opts...)
	if err != nil {
		return nil, err
	}
	return res.Paths, nil
}

// Run is Search returning the full SearchResult.
func Run(g *grid.Grid, start grid.Position, goals []grid.Position, opts ...Option) (SearchResult, error) {
	s, err := NewStepper(g, start, goals, opts...)
	if err != nil {
		return SearchResult{}, err
	}
	for {
		if _, ok := s.advance(false); !ok {
			break
		}
	}
	return s.Result(), nil
}

// Stepper drives a flood fill one dequeue at a time. It owns all mutable
// search state and must not be shared between goroutines.
type Stepper struct {
	grid   *grid.Grid
	rec    trace.Recorder
	record bool

	frontier  *queue.Queue[grid.Position]
	visited   mapset.Set[grid.Position]
	cameFrom  map[grid.Position]grid.Position
	distance  map[grid.Position]int
	goals     mapset.Set[grid.Position]
	remaining int
	paths     map[grid.Position]path.Path

	expanded int
	done     bool
	nbrs     []grid.Position
}

// NewStepper prepares a flood fill from start towards goals without
// expanding anything yet. Duplicate goals are counted once.
func NewStepper(g *grid.Grid, start grid.Position, goals []grid.Position, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Stepper{
		grid:     g,
		rec:      o.Recorder,
		record:   trace.Enabled(o.Recorder),
		frontier: queue.New[grid.Position](),
		visited:  mapset.New[grid.Position](),
		cameFrom: make(map[grid.Position]grid.Position),
		distance: make(map[grid.Position]int),
		goals:    mapset.New[grid.Position](),
		paths:    make(map[grid.Position]path.Path),
		nbrs:     make([]grid.Position, 0, 4),
	}
	for _, goal := range goals {
		if !s.goals.Has(goal) {
			s.goals.Put(goal)
			s.remaining++
		}
	}

	// An absent start, or nothing to look for, finishes before the first step.
	if !g.Passable(start) || s.remaining == 0 {
		s.done = true
		return s, nil
	}
	s.visited.Put(start)
	s.distance[start] = 0
	s.frontier.Enqueue(start)

	return s, nil
}

// Step dequeues and expands one cell and returns its frame. The bool is
// false once the search had already finished and nothing was expanded.
// The returned Frame is the same value handed to the Recorder, if any.
func (s *Stepper) Step() (trace.Frame, bool) {
	return s.advance(true)
}

// Done reports whether every goal was reached or the frontier is exhausted.
func (s *Stepper) Done() bool { return s.done }

// Result returns the paths found so far. After Done it is final.
func (s *Stepper) Result() SearchResult {
	paths := make(map[grid.Position]path.Path, len(s.paths))
	for goal, p := range s.paths {
		paths[goal] = p
	}
	dist := make(map[grid.Position]int, len(s.distance))
	for p, d := range s.distance {
		dist[p] = d
	}
	return SearchResult{Paths: paths, Distance: dist, Expanded: s.expanded}
}

// advance performs one dequeue. A frame is built only when the caller
// wants one or a recorder is attached.
func (s *Stepper) advance(build bool) (trace.Frame, bool) {
	if s.done {
		return trace.Frame{}, false
	}
	if s.frontier.Empty() {
		s.done = true
		return trace.Frame{}, false
	}

	cur := s.frontier.Dequeue()
	s.expanded++

	var f trace.Frame
	if build || s.record {
		f = s.snapshot(cur)
		if s.record {
			s.rec.Record(f)
		}
	}

	if s.goals.Has(cur) {
		if _, seen := s.paths[cur]; !seen {
			s.paths[cur] = path.Reconstruct(s.cameFrom, cur)
			s.remaining--
			if s.remaining == 0 {
				s.done = true
				return f, true
			}
		}
	}

	s.nbrs = s.grid.Neighbors(s.nbrs[:0], cur, grid.Conn4)
	for _, n := range s.nbrs {
		// first time seen?
		if s.visited.Has(n) {
			continue
		}
		s.visited.Put(n)
		s.cameFrom[n] = cur
		s.distance[n] = s.distance[cur] + 1
		s.frontier.Enqueue(n)
	}
	if s.frontier.Empty() {
		s.done = true
	}

	return f, true
}

func (s *Stepper) snapshot(cur grid.Position) trace.Frame {
	return trace.Frame{
		Step:    s.expanded,
		Current: cur,
		Visited: trace.CopySet(s.visited),
		Cost:    trace.CopyCosts(s.distance),
	}
}
