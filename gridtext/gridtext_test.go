package gridtext_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/gridtext"
)

func TestParse(t *testing.T) {
	in := "\n  s 0 1\n0 0 e\n\nignored 9\n"
	g, err := gridtext.ParseString(in)
	require.NoError(t, err)
	assert.Equal(t, [][]grid.CellKind{
		{grid.Start, grid.Free, grid.Obstacle},
		{grid.Free, grid.Free, grid.Goal},
	}, g.Cells())

	g, err = gridtext.ParseString("2 0 3\n")
	require.NoError(t, err)
	assert.Equal(t, grid.Start, g.At(grid.Pos(0, 0)))
	assert.Equal(t, grid.Goal, g.At(grid.Pos(0, 2)))
}

func TestParse_Errors(t *testing.T) {
	_, err := gridtext.ParseString("S 0\n0 x\n")
	assert.True(t, errors.Is(err, gridtext.ErrSyntax), "got %v", err)
	assert.Contains(t, err.Error(), "line 2, column 2")

	_, err = gridtext.ParseString("S 0 0\n0 E\n")
	assert.True(t, errors.Is(err, grid.ErrNonRectangular), "got %v", err)

	_, err = gridtext.ParseString("\n\n")
	assert.True(t, errors.Is(err, grid.ErrEmptyGrid), "got %v", err)
}

func TestFormat_RoundTrip(t *testing.T) {
	const in = "S 0 1\n0 0 E\n"
	g, err := gridtext.ParseString(in)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, gridtext.Format(&sb, g))
	assert.Equal(t, in, sb.String())
}

// TestParse_WideRow reads a row longer than bufio's default token size.
func TestParse_WideRow(t *testing.T) {
	const width = 40000
	var sb strings.Builder
	sb.WriteString("S")
	for i := 1; i < width-1; i++ {
		sb.WriteString(" 0")
	}
	sb.WriteString(" E\n")
	require.Greater(t, sb.Len(), 64*1024)

	g, err := gridtext.ParseString(sb.String())
	require.NoError(t, err)
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, width, g.Cols())
	assert.Equal(t, grid.Goal, g.At(grid.Pos(0, width-1)))
}
