// Package grid models a rectangular 2D map of cells as the input to the
// search packages (floodfill, astar).
//
// What:
//
//   - Grid wraps a rectangular [][]CellKind matrix and is read-only after
//     construction (the input is deep-copied).
//   - Position is a comparable (Row, Col) pair usable as a map key.
//   - Locate scans a Grid once and returns its Start cell and Goal cells.
//   - Regions labels connected components of traversable cells.
//
// Cell encoding (matches the integer form accepted by FromInts):
//
//	0 = Free, 1 = Obstacle, 2 = Start, 3 = Goal
//
// Movement:
//
//   - Conn4: up, right, down, left (in that order).
//   - Conn8: Conn4 followed by the four diagonals.
//
// Out-of-bounds and Obstacle neighbors are filtered silently by Neighbors;
// that is normal boundary handling, not an error.
//
// Errors:
//
//   - ErrInvalidLayout: the grid cannot be searched as requested.
//   - ErrEmptyGrid, ErrNonRectangular: both wrap ErrInvalidLayout.
//
// Complexity:
//
//   - New/FromInts: O(R×C) time and memory.
//   - Locate:       O(R×C) time, O(goals) memory.
//   - Regions:      O(R×C×4) time, O(R×C) memory.
package grid
