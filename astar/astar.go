package astar

import (
	"container/heap"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/trace"
)

// Search finds a cheapest path from start to goal on g.
//
// Returns (path, true, nil) on success, (nil, false, nil) if goal is not
// reachable, and ErrNilGrid for a nil grid. Start or goal cells that are
// out of bounds or Obstacles are simply unreachable.
//
// Complexity:
//   - Time:  O(N·d·log(N·d))
//   - Space: O(N·d)
func Search(g *grid.Grid, start, goal grid.Position, opts ...Option) (path.Path, bool, error) {
	res, err := Run(g, start, goal, opts...)
	if err != nil {
		return nil, false, err
	}
	return res.Path, res.Found, nil
}

// Run is Search returning the full SearchResult.
func Run(g *grid.Grid, start, goal grid.Position, opts ...Option) (SearchResult, error) {
	s, err := NewStepper(g, start, goal, opts...)
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

// Stepper drives an A* search one expansion at a time. It owns all mutable
// search state and must not be shared between goroutines.
type Stepper struct {
	grid      *grid.Grid
	goal      grid.Position
	conn      grid.Connectivity
	heuristic Heuristic
	rec       trace.Recorder
	record    bool

	open     frontier
	seq      uint64
	visited  mapset.Set[grid.Position]
	cameFrom map[grid.Position]grid.Position
	gScore   map[grid.Position]float64

	expanded int
	done     bool
	found    bool
	result   path.Path
	nbrs     []grid.Position
}

// NewStepper prepares an A* search without expanding anything yet.
func NewStepper(g *grid.Grid, start, goal grid.Position, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Stepper{
		grid:      g,
		goal:      goal,
		conn:      o.connectivity(),
		heuristic: o.heuristic(),
		rec:       o.Recorder,
		record:    trace.Enabled(o.Recorder),
		visited:   mapset.New[grid.Position](),
		cameFrom:  make(map[grid.Position]grid.Position),
		gScore:    make(map[grid.Position]float64),
		nbrs:      make([]grid.Position, 0, 8),
	}
	heap.Init(&s.open)

	if !g.Passable(start) || !g.Passable(goal) {
		s.done = true
		return s, nil
	}
	s.gScore[start] = 0
	s.push(start, 0)

	return s, nil
}

// Step pops the next non-stale node, expands it, and returns its frame.
// The bool is false once the search had already finished and nothing was
// expanded. The returned Frame is the same value handed to the Recorder.
func (s *Stepper) Step() (trace.Frame, bool) {
	return s.advance(true)
}

// Done reports whether the goal was reached or the frontier is exhausted.
func (s *Stepper) Done() bool { return s.done }

// Result returns the outcome. Before Done it reports Found=false.
func (s *Stepper) Result() SearchResult {
	res := SearchResult{Found: s.found, Expanded: s.expanded}
	if s.found {
		res.Path = append(path.Path(nil), s.result...)
		res.Cost = s.gScore[s.goal]
	}
	return res
}

func (s *Stepper) push(p grid.Position, g float64) {
	s.seq++
	heap.Push(&s.open, &item{pos: p, g: g, f: g + s.heuristic(p, s.goal), seq: s.seq})
}

// advance performs one non-duplicate pop. A frame is built only when the
// caller wants one or a recorder is attached.
func (s *Stepper) advance(build bool) (trace.Frame, bool) {
	if s.done {
		return trace.Frame{}, false
	}

	var cur *item
	for s.open.Len() > 0 {
		it := heap.Pop(&s.open).(*item)
		// lazy deletion: skip stale duplicates
		if s.visited.Has(it.pos) {
			continue
		}
		cur = it
		break
	}
	if cur == nil {
		s.done = true
		return trace.Frame{}, false
	}
	s.visited.Put(cur.pos)
	s.expanded++

	var f trace.Frame
	if build || s.record {
		f = s.snapshot(cur.pos)
		if s.record {
			s.rec.Record(f)
		}
	}

	if cur.pos == s.goal {
		s.done = true
		s.found = true
		s.result = path.Reconstruct(s.cameFrom, cur.pos)
		return f, true
	}

	s.nbrs = s.grid.Neighbors(s.nbrs[:0], cur.pos, s.conn)
	for _, n := range s.nbrs {
		if s.visited.Has(n) {
			continue
		}
		cand := s.gScore[cur.pos] + path.StepCost(n.Sub(cur.pos))
		if known, ok := s.gScore[n]; ok && known <= cand {
			continue
		}
		s.gScore[n] = cand
		s.cameFrom[n] = cur.pos
		s.push(n, cand)
	}
	s.dropStale()
	if s.open.Len() == 0 {
		s.done = true
	}

	return f, true
}

// dropStale pops entries for already expanded nodes off the top of the
// heap, so an empty heap means the frontier is exhausted.
func (s *Stepper) dropStale() {
	for s.open.Len() > 0 && s.visited.Has(s.open[0].pos) {
		heap.Pop(&s.open)
	}
}

// snapshot copies the search state for a frame. Frontier ranks follow pop
// order; stale entries for already expanded nodes are left out.
func (s *Stepper) snapshot(cur grid.Position) trace.Frame {
	pending := make([]*item, 0, len(s.open))
	for _, it := range s.open {
		if !s.visited.Has(it.pos) {
			pending = append(pending, it)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].before(pending[j]) })

	inQueue := mapset.New[grid.Position]()
	rank := make(map[grid.Position]int, len(pending))
	for _, it := range pending {
		if inQueue.Has(it.pos) {
			continue
		}
		inQueue.Put(it.pos)
		rank[it.pos] = len(rank) + 1
	}

	return trace.Frame{
		Step:         s.expanded,
		Current:      cur,
		Visited:      trace.CopySet(s.visited),
		Cost:         s.settledCosts(),
		Frontier:     inQueue,
		FrontierRank: rank,
	}
}

// settledCosts copies g for expanded nodes only; tentative frontier costs
// stay out of the frame.
func (s *Stepper) settledCosts() map[grid.Position]float64 {
	out := make(map[grid.Position]float64, s.visited.Size())
	s.visited.Each(func(p grid.Position) {
		out[p] = s.gScore[p]
	})
	return out
}
