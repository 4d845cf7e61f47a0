package astar

import "github.com/katalvlaran/gridsearch/grid"

// item is one heap entry. The same position may be pushed several times;
// stale entries are discarded on pop.
type item struct {
	pos grid.Position
	g   float64
	f   float64
	seq uint64 // insertion order, breaks f ties FIFO
}

// before reports whether a pops ahead of b.
func (a *item) before(b *item) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// frontier implements heap.Interface over *item.
type frontier []*item

func (q frontier) Len() int           { return len(q) }
func (q frontier) Less(i, j int) bool { return q[i].before(q[j]) }
func (q frontier) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) {
	*q = append(*q, x.(*item))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
