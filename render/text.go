// Package render draws grids, paths and exploration frames for people:
// Text for console output and Screen/Replay for a terminal animation of a
// recorded trace. Nothing here feeds back into the searches.
package render

import (
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
)

// PathMark replaces free cells lying on a path in Text output.
const PathMark = "*"

// Text renders g one row per line, cells separated by spaces, with S and E
// for start and goal and PathMark on every free cell of any given path.
func Text(g *grid.Grid, paths ...path.Path) string {
	onPath := make(map[grid.Position]bool)
	for _, p := range paths {
		for _, q := range p {
			onPath[q] = true
		}
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			p := grid.Pos(r, c)
			k := g.At(p)
			if k == grid.Free && onPath[p] {
				sb.WriteString(PathMark)
				continue
			}
			sb.WriteString(k.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
