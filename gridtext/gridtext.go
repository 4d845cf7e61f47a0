// Package gridtext reads and writes grids in the plain text layout used at
// the console: one row per line, cells separated by whitespace.
//
// Tokens: 0 (free), 1 (obstacle), 2 or S (start), 3 or E (goal); letters
// are case-insensitive. Leading blank lines are skipped and the first blank
// line after a row ends the grid. Rows may be up to MaxLineBytes long.
package gridtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// MaxLineBytes bounds the length of one input row.
const MaxLineBytes = 16 << 20

// ErrSyntax is returned for tokens that are not a cell code.
var ErrSyntax = errors.New("gridtext: syntax error")

// Parse reads a grid from r. Shape errors come back from grid.New and wrap
// grid.ErrInvalidLayout.
func Parse(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	var (
		rows [][]grid.CellKind
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			if len(rows) == 0 {
				continue
			}
			break
		}
		row := make([]grid.CellKind, len(fields))
		for i, tok := range fields {
			k, err := ParseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			row[i] = k
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridtext: read: %w", err)
	}

	return grid.New(rows)
}

// ParseString is Parse over a string.
func ParseString(s string) (*grid.Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseCell converts one token to a CellKind.
func ParseCell(tok string) (grid.CellKind, error) {
	switch strings.ToUpper(tok) {
	case "0":
		return grid.Free, nil
	case "1":
		return grid.Obstacle, nil
	case "2", "S":
		return grid.Start, nil
	case "3", "E":
		return grid.Goal, nil
	}
	return 0, fmt.Errorf("%w: unknown cell %q", ErrSyntax, tok)
}

// Format writes g in the layout Parse reads, using S and E for the start
// and goal cells.
func Format(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(g.At(grid.Pos(r, c)).String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
