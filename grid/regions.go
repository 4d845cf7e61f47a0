package grid

import (
	"fmt"

	"github.com/zyedidia/generic/queue"
)

// DefaultFirstColor is the color given to the first region. Colors 0 and 1
// are reserved for the Free and Obstacle codes of the integer encoding.
const DefaultFirstColor = 2

// Region is one connected component of traversable cells.
type Region struct {
	Color int
	Cells []Position // row-major order
}

// RegionOptions configures Regions and Label.
type RegionOptions struct {
	// FirstColor is the color of the first region; later regions count up.
	FirstColor int
	// Seed, if set and passable, makes its region the first one colored.
	Seed *Position

	err error
}

// RegionOption configures Regions via functional arguments.
type RegionOption func(*RegionOptions)

// WithFirstColor sets the color of the first region. Values below
// DefaultFirstColor would collide with cell codes and are rejected.
func WithFirstColor(color int) RegionOption {
	return func(o *RegionOptions) {
		if color < DefaultFirstColor {
			o.err = fmt.Errorf("grid: first color must be >= %d, got %d", DefaultFirstColor, color)
			return
		}
		o.FirstColor = color
	}
}

// WithSeed colors the region containing p first. A seed that is out of
// bounds or on an Obstacle is ignored.
func WithSeed(p Position) RegionOption {
	return func(o *RegionOptions) {
		o.Seed = &p
	}
}

// Regions finds every 4-connected component of traversable cells
// (Free, Start, Goal). Components are colored from FirstColor upward:
// the seed's component first (if any), then the rest in row-major order
// of their first cell.
//
// Time:   O(R×C×4).
// Memory: O(R×C).
func Regions(g *Grid, opts ...RegionOption) ([]Region, error) {
	_, regions, err := label(g, opts)
	return regions, err
}

// Label returns a copy of g in the integer encoding where every traversable
// cell carries its region color and obstacles stay 1.
func Label(g *Grid, opts ...RegionOption) ([][]int, error) {
	labels, _, err := label(g, opts)
	return labels, err
}

func label(g *Grid, opts []RegionOption) ([][]int, []Region, error) {
	o := RegionOptions{FirstColor: DefaultFirstColor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if g == nil {
		return nil, nil, ErrEmptyGrid
	}

	labels := make([][]int, g.rows)
	for r := range labels {
		labels[r] = make([]int, g.cols)
		for c := range labels[r] {
			if g.cells[r][c] == Obstacle {
				labels[r][c] = int(Obstacle)
			}
		}
	}

	color := o.FirstColor
	var order []int
	if o.Seed != nil && g.Passable(*o.Seed) {
		fill(g, labels, *o.Seed, color)
		order = append(order, color)
		color++
	}
	g.Each(func(p Position, k CellKind) {
		if k.Traversable() && labels[p.Row][p.Col] == 0 {
			fill(g, labels, p, color)
			order = append(order, color)
			color++
		}
	})

	// Collect cells in row-major order, as a scan of the labeled grid would.
	byColor := make(map[int]*Region, len(order))
	regions := make([]Region, len(order))
	for i, c := range order {
		regions[i].Color = c
		byColor[c] = &regions[i]
	}
	g.Each(func(p Position, k CellKind) {
		if k.Traversable() {
			reg := byColor[labels[p.Row][p.Col]]
			reg.Cells = append(reg.Cells, p)
		}
	})

	return labels, regions, nil
}

// fill colors the 4-connected traversable component containing seed.
func fill(g *Grid, labels [][]int, seed Position, color int) {
	q := queue.New[Position]()
	labels[seed.Row][seed.Col] = color
	q.Enqueue(seed)
	var nbrs []Position
	for !q.Empty() {
		cur := q.Dequeue()
		nbrs = g.Neighbors(nbrs[:0], cur, Conn4)
		for _, n := range nbrs {
			if labels[n.Row][n.Col] == 0 {
				labels[n.Row][n.Col] = color
				q.Enqueue(n)
			}
		}
	}
}
