package render

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/trace"
)

// Palette styles each layer of a frame.
type Palette struct {
	Free     tcell.Style
	Obstacle tcell.Style
	Start    tcell.Style
	Goal     tcell.Style
	Visited  tcell.Style
	Frontier tcell.Style
	Path     tcell.Style
	Current  tcell.Style
	Title    tcell.Style
}

// DefaultPalette: start green, goal red, visited light blue, in-queue pink,
// final path gold.
func DefaultPalette() Palette {
	base := tcell.StyleDefault.Foreground(tcell.ColorBlack)
	return Palette{
		Free:     base.Background(tcell.ColorWhite),
		Obstacle: base.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		Start:    base.Background(tcell.ColorGreen),
		Goal:     base.Background(tcell.ColorRed),
		Visited:  base.Background(tcell.NewRGBColor(0x87, 0xce, 0xfa)),
		Frontier: base.Background(tcell.NewRGBColor(0xff, 0x69, 0xb4)),
		Path:     base.Background(tcell.NewRGBColor(0xff, 0xd7, 0x00)),
		Current:  base.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite),
		Title:    tcell.StyleDefault,
	}
}

// CellWidth is the number of terminal columns per grid cell.
const CellWidth = 2

// Screen paints frames onto a tcell.Screen.
type Screen struct {
	screen  tcell.Screen
	grid    *grid.Grid
	palette Palette
	title   string
}

// NewScreen binds a renderer to s and g. The title prefixes the status line.
func NewScreen(s tcell.Screen, g *grid.Grid, title string, p Palette) *Screen {
	return &Screen{screen: s, grid: g, palette: p, title: title}
}

// Draw paints f, and final on top of it when non-empty, then the status
// line under the grid. It does not call Show.
func (r *Screen) Draw(f trace.Frame, final path.Path, status string) {
	onPath := make(map[grid.Position]bool, len(final))
	for _, p := range final {
		onPath[p] = true
	}

	r.screen.Clear()
	r.grid.Each(func(p grid.Position, k grid.CellKind) {
		glyph, style := r.cell(p, k, f, onPath)
		x, y := p.Col*CellWidth, p.Row
		r.screen.SetContent(x, y, glyph, nil, style)
		for i := 1; i < CellWidth; i++ {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
	})

	line := r.title
	if status != "" {
		line += " - " + status
	}
	for i, ch := range line {
		r.screen.SetContent(i, r.grid.Rows()+1, ch, nil, r.palette.Title)
	}
}

// cell picks glyph and style for one position; later layers win.
func (r *Screen) cell(p grid.Position, k grid.CellKind, f trace.Frame, onPath map[grid.Position]bool) (rune, tcell.Style) {
	switch k {
	case grid.Obstacle:
		return ' ', r.palette.Obstacle
	case grid.Start:
		return 'S', r.palette.Start
	case grid.Goal:
		return 'E', r.palette.Goal
	}
	switch {
	case onPath[p]:
		return '*', r.palette.Path
	case f.Step > 0 && p == f.Current:
		return '@', r.palette.Current
	case f.InFrontier(p):
		return '+', r.palette.Frontier
	case f.Visited.Has(p):
		return '.', r.palette.Visited
	}
	return ' ', r.palette.Free
}

// Replay shows every frame for delay, then holds the last frame with the
// final path until ctx is done. An empty final path marks "no solution".
// It returns ctx.Err() if ctx ends before the last frame was shown.
func (r *Screen) Replay(ctx context.Context, frames []trace.Frame, final path.Path, delay time.Duration) error {
	total := len(frames)
	for i := range frames {
		r.Draw(frames[i], nil, fmt.Sprintf("frame %d/%d, %s", i+1, total, Status(frames[i])))
		r.screen.Show()
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}

	var last trace.Frame
	if total > 0 {
		last = frames[total-1]
	}
	status := "no solution"
	if len(final) > 0 {
		status = fmt.Sprintf("path of %d cells", len(final))
	}
	r.Draw(last, final, status)
	r.screen.Show()

	<-ctx.Done()
	return nil
}

// Status summarizes a frame: visited count and, for A*, the next cell
// to be expanded.
func Status(f trace.Frame) string {
	s := fmt.Sprintf("%d visited", f.Visited.Size())
	if next := f.FrontierList(); len(next) > 0 {
		s += fmt.Sprintf(", next %v", next[0])
	}
	return s
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
