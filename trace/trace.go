package trace

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/grid"
)

// Frame is one step of an exploration trace.
type Frame struct {
	// Step is the 1-based expansion index within the search.
	Step int
	// Current is the node expanded at this step.
	Current grid.Position
	// Visited holds every expanded (flood fill: discovered) position.
	Visited mapset.Set[grid.Position]
	// Cost maps every Visited position to its cost from start:
	// hop distance for flood fill, settled g for A*.
	Cost map[grid.Position]float64
	// Frontier holds the positions still waiting in the A* queue.
	// It is the zero Set for flood fill frames.
	Frontier mapset.Set[grid.Position]
	// FrontierRank maps each frontier position to its 1-based pop order
	// (1 = next to be expanded). Nil for flood fill frames.
	FrontierRank map[grid.Position]int
}

// FrontierList returns the frontier positions in rank order.
func (f Frame) FrontierList() []grid.Position {
	out := make([]grid.Position, len(f.FrontierRank))
	for p, rank := range f.FrontierRank {
		out[rank-1] = p
	}
	return out
}

// InFrontier reports whether p was queued but not yet expanded at this step.
func (f Frame) InFrontier(p grid.Position) bool {
	_, ok := f.FrontierRank[p]
	return ok
}

// Recorder receives frames from a running search.
type Recorder interface {
	Record(f Frame)
}

// RecorderFunc adapts a plain function to the Recorder interface.
type RecorderFunc func(f Frame)

// Record calls fn(f).
func (fn RecorderFunc) Record(f Frame) { fn(f) }

type nop struct{}

func (nop) Record(Frame) {}

// Nop discards every frame. Searches never build frames for it.
var Nop Recorder = nop{}

// Enabled reports whether r should receive frames.
func Enabled(r Recorder) bool {
	return r != nil && r != Nop
}

// Collector retains every recorded frame for later replay.
// It is not safe for concurrent use, matching the single-threaded searches.
type Collector struct {
	frames []Frame
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends f.
func (c *Collector) Record(f Frame) {
	c.frames = append(c.frames, f)
}

// Frames returns the recorded frames in order.
func (c *Collector) Frames() []Frame {
	out := make([]Frame, len(c.frames))
	copy(out, c.frames)
	return out
}

// Len returns the number of recorded frames.
func (c *Collector) Len() int { return len(c.frames) }

// Last returns the most recent frame and false if none was recorded.
func (c *Collector) Last() (Frame, bool) {
	if len(c.frames) == 0 {
		return Frame{}, false
	}
	return c.frames[len(c.frames)-1], true
}

// CopySet returns an independent copy of s.
func CopySet(s mapset.Set[grid.Position]) mapset.Set[grid.Position] {
	out := mapset.New[grid.Position]()
	s.Each(func(p grid.Position) {
		out.Put(p)
	})
	return out
}

// CopyCosts returns an independent float64 copy of a cost or distance map.
func CopyCosts[C int | float64](m map[grid.Position]C) map[grid.Position]float64 {
	out := make(map[grid.Position]float64, len(m))
	for p, c := range m {
		out[p] = float64(c)
	}
	return out
}
