package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout indicates the grid cannot be searched in the requested mode,
	// e.g. zero or several Start cells.
	ErrInvalidLayout = errors.New("grid: invalid layout")

	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidLayout)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidLayout)

	// ErrUnknownCell indicates an integer cell code outside 0..3.
	ErrUnknownCell = fmt.Errorf("%w: unknown cell code", ErrInvalidLayout)
)
