package astar_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/trace"
)

// mustLocate returns start and the single goal of a layout.
func mustLocate(t *testing.T, values [][]int) (*grid.Grid, grid.Position, grid.Position) {
	t.Helper()
	g := grid.MustFromInts(values)
	lay, err := grid.Locate(g, grid.WithSingleGoal())
	require.NoError(t, err)
	require.Len(t, lay.Goals, 1)
	return g, lay.Start, lay.Goals[0]
}

// TestSearch_Maze checks the reference maze: 6 moves, 7 positions.
//
//	S 0 1 0 0
//	0 0 0 0 1
//	0 1 0 0 0
//	1 0 0 E 1
func TestSearch_Maze(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{
		{2, 0, 1, 0, 0},
		{0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
		{1, 0, 0, 3, 1},
	})
	p, found, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 7, p.Len())
	assert.Equal(t, 6, p.Moves())
	assert.Equal(t, start, p.Start())
	assert.Equal(t, goal, p.End())
	assert.NoError(t, p.Validate(g, grid.Conn4))
}

// TestSearch_SingleRow: S 0 0 0 E gives the direct path.
func TestSearch_SingleRow(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{{2, 0, 0, 0, 3}})
	for _, diag := range []bool{false, true} {
		p, found, err := astar.Search(g, start, goal, astar.WithDiagonalAllowed(diag))
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, path.Path{
			grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(0, 2), grid.Pos(0, 3), grid.Pos(0, 4),
		}, p)
	}
}

// TestSearch_Enclosed: an unreachable goal is absent, not an error.
func TestSearch_Enclosed(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{
		{2, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 3, 1, 0},
		{0, 1, 1, 1, 0},
	})
	for _, diag := range []bool{false, true} {
		res, err := astar.Run(g, start, goal, astar.WithDiagonalAllowed(diag))
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Nil(t, res.Path)
		assert.Zero(t, res.Cost)
		// every reachable cell is expanded before giving up
		assert.Equal(t, 11, res.Expanded)
	}
}

// TestSearch_Diagonal prefers √2 steps and reports the exact cost.
//
//	S 0 0
//	0 1 0
//	0 0 E
func TestSearch_Diagonal(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{
		{2, 0, 0},
		{0, 1, 0},
		{0, 0, 3},
	})
	res, err := astar.Run(g, start, goal, astar.WithDiagonal())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Path.Len())
	assert.InDelta(t, 2+math.Sqrt2, res.Cost, 1e-9)
	assert.InDelta(t, res.Cost, res.Path.Cost(), 1e-9)
	assert.NoError(t, res.Path.Validate(g, grid.Conn8))

	res, err = astar.Run(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 5, res.Path.Len())
	assert.Equal(t, 4.0, res.Cost)
}

// TestSearch_NoCornerCutRule: a diagonal move needs only a free destination.
//
//	S 1
//	1 E
func TestSearch_NoCornerCutRule(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{
		{2, 1},
		{1, 3},
	})
	p, found, err := astar.Search(g, start, goal, astar.WithDiagonal())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, path.Path{grid.Pos(0, 0), grid.Pos(1, 1)}, p)

	_, found, err = astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestSearch_TieBreakFIFO: with equal f, the neighbor pushed first (right,
// before down) is expanded first, so the path runs along the top row.
//
//	S 0
//	0 E
func TestSearch_TieBreakFIFO(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{
		{2, 0},
		{0, 3},
	})
	rec := trace.NewCollector()
	res, err := astar.Run(g, start, goal, astar.WithRecorder(rec))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, path.Path{grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(1, 1)}, res.Path)
	assert.Equal(t, 4, res.Expanded)

	frames := rec.Frames()
	require.Len(t, frames, 4)
	currents := []grid.Position{frames[0].Current, frames[1].Current, frames[2].Current, frames[3].Current}
	assert.Equal(t, []grid.Position{grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(1, 0), grid.Pos(1, 1)}, currents)
	assert.Equal(t, map[grid.Position]int{grid.Pos(1, 0): 1}, frames[1].FrontierRank)
	assert.Equal(t, map[grid.Position]int{grid.Pos(1, 1): 1}, frames[2].FrontierRank)
}

// TestSearch_GoalIsStart returns the single-position path at zero cost.
func TestSearch_GoalIsStart(t *testing.T) {
	g := grid.MustFromInts([][]int{{2, 0}})
	res, err := astar.Run(g, grid.Pos(0, 0), grid.Pos(0, 0))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, path.Path{grid.Pos(0, 0)}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Expanded)
}

// TestSearch_BlockedEndpoints: obstacle or out-of-bounds endpoints are
// unreachable without expanding anything.
func TestSearch_BlockedEndpoints(t *testing.T) {
	g := grid.MustFromInts([][]int{{2, 0, 1}})
	cases := []struct {
		name        string
		start, goal grid.Position
	}{
		{"goal obstacle", grid.Pos(0, 0), grid.Pos(0, 2)},
		{"goal outside", grid.Pos(0, 0), grid.Pos(3, 0)},
		{"start outside", grid.Pos(-1, 0), grid.Pos(0, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Run(g, tc.start, tc.goal)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Zero(t, res.Expanded)
		})
	}
}

func TestSearch_NilGrid(t *testing.T) {
	_, _, err := astar.Search(nil, grid.Pos(0, 0), grid.Pos(0, 0))
	if !errors.Is(err, astar.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
}

// TestRecorder_Snapshots checks frame contents and that frames are not
// altered by the search continuing after they were recorded.
func TestRecorder_Snapshots(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{
		{2, 0, 1, 0, 0},
		{0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
		{1, 0, 0, 3, 1},
	})
	rec := trace.NewCollector()
	res, err := astar.Run(g, start, goal, astar.WithDiagonal(), astar.WithRecorder(rec))
	require.NoError(t, err)
	require.True(t, res.Found)

	frames := rec.Frames()
	require.Equal(t, res.Expanded, len(frames))

	first := frames[0]
	assert.Equal(t, start, first.Current)
	assert.Equal(t, 1, first.Visited.Size())
	assert.Empty(t, first.FrontierRank)
	assert.Equal(t, map[grid.Position]float64{start: 0}, first.Cost)

	for i := range frames {
		f := frames[i]
		assert.Equal(t, i+1, f.Step)
		assert.Equal(t, i+1, f.Visited.Size(), "one expansion per frame")
		assert.True(t, f.Visited.Has(f.Current))
		// costs are reported for expanded cells only
		assert.Len(t, f.Cost, f.Visited.Size())
		for p := range f.Cost {
			assert.True(t, f.Visited.Has(p), "cost for unexpanded cell %v", p)
		}
		// ranks are 1..n and never point at expanded cells
		assert.Equal(t, len(f.FrontierRank), f.Frontier.Size())
		seen := make(map[int]bool)
		for p, rank := range f.FrontierRank {
			assert.False(t, f.Visited.Has(p), "frontier cell %v already expanded", p)
			assert.True(t, f.Frontier.Has(p))
			assert.True(t, rank >= 1 && rank <= len(f.FrontierRank))
			seen[rank] = true
		}
		assert.Len(t, seen, len(f.FrontierRank))
	}
	assert.Equal(t, goal, frames[len(frames)-1].Current)
}

// TestDeterminism: identical inputs give identical paths and traces.
func TestDeterminism(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, start, goal := randomLayout(seed, 12, 15, 0.25)
		for _, diag := range []bool{false, true} {
			r1, r2 := trace.NewCollector(), trace.NewCollector()
			a, err := astar.Run(g, start, goal, astar.WithDiagonalAllowed(diag), astar.WithRecorder(r1))
			require.NoError(t, err)
			b, err := astar.Run(g, start, goal, astar.WithDiagonalAllowed(diag), astar.WithRecorder(r2))
			require.NoError(t, err)
			require.Equal(t, a, b)
			require.Equal(t, r1.Len(), r2.Len())
			for i, f := range r1.Frames() {
				require.Equal(t, f.Current, r2.Frames()[i].Current)
				require.Equal(t, f.FrontierRank, r2.Frames()[i].FrontierRank)
			}
		}
	}
}

// TestStepper steps a search by hand and matches Run.
func TestStepper(t *testing.T) {
	g, start, goal := mustLocate(t, [][]int{
		{2, 0, 0},
		{1, 1, 0},
		{3, 0, 0},
	})
	st, err := astar.NewStepper(g, start, goal)
	require.NoError(t, err)
	assert.False(t, st.Result().Found, "nothing found before stepping")

	steps := 0
	for !st.Done() {
		_, ok := st.Step()
		require.True(t, ok)
		steps++
	}
	_, ok := st.Step()
	assert.False(t, ok)

	want, err := astar.Run(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, want, st.Result())
	assert.Equal(t, want.Expanded, steps)
	assert.Equal(t, 6, want.Path.Moves())
}

// TestStepper_DoneMatchesStep: while Done is false, Step always expands a
// node, even when only stale heap entries are left behind an expansion.
func TestStepper_DoneMatchesStep(t *testing.T) {
	check := func(seed int64, diag bool) {
		g, start, goal := randomLayout(seed, 10, 10, 0.3)
		st, err := astar.NewStepper(g, start, goal, astar.WithDiagonalAllowed(diag))
		require.NoError(t, err)
		for !st.Done() {
			f, ok := st.Step()
			require.True(t, ok, "seed %d diag %v: Step after Done()=false", seed, diag)
			require.NotZero(t, f.Step)
		}
		_, ok := st.Step()
		require.False(t, ok)
	}

	// layouts that end with only stale entries in the heap
	check(286, true)
	check(396, true)
	for seed := int64(1); seed <= 500; seed++ {
		check(seed, false)
		check(seed, true)
	}
}

func TestHeuristics(t *testing.T) {
	a, b := grid.Pos(1, 1), grid.Pos(4, 5)
	assert.Equal(t, 7.0, astar.Manhattan(a, b))
	assert.Equal(t, 5.0, astar.Euclidean(a, b))
	assert.Equal(t, astar.Manhattan(a, b), astar.Manhattan(b, a))
	assert.Zero(t, astar.Euclidean(a, a))
}
