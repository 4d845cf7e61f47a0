package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridsearch/path"
	"github.com/katalvlaran/gridsearch/render"
)

var titles = map[string]string{
	algoAStar:     "A*",
	algoFloodFill: "Flood Fill (BFS)",
}

// animate replays the recorded frames until the user quits.
func animate(o *outcome, delay time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			}
		}
	}()

	var final path.Path
	for _, p := range o.found() {
		final = append(final, p...)
	}
	r := render.NewScreen(screen, o.grid, titles[o.algo], render.DefaultPalette())
	if err := r.Replay(ctx, o.frames, final, delay); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
