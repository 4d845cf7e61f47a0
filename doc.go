// Package gridsearch finds shortest paths through 2-D grids with
// obstacles, a single start cell and one or more goal cells.
//
// 🚀 What is inside?
//
//   - grid     : the read-only Grid, positions, 4/8 connectivity, Locate
//     (start & goal discovery) and Regions (connected-component coloring)
//   - floodfill: multi-target breadth-first search: one shortest path per
//     reachable goal in a single sweep
//   - astar    : weighted A* with optional diagonal moves (cost √2),
//     Manhattan/Euclidean heuristics and a FIFO tie-break
//   - path     : predecessor-map reconstruction, cost and validation
//   - trace    : the exploration Frame contract and recorders for
//     step-by-step visualizers
//   - gridtext : plain-text grid reading/writing
//   - render   : console output and a tcell terminal replay
//
// The command cmd/gridsearch wires them together.
//
// ✨ Guarantees
//
//   - Searches never mutate the grid; one Grid may serve concurrent searches.
//   - "No path" is a separate result (found=false or an absent map key),
//     never an empty path.
//   - Frames are deep copies, built only when a recorder is configured.
//
// Quick start:
//
//	g, _ := gridtext.ParseString("S 0 1\n0 0 E\n")
//	lay, _ := grid.Locate(g, grid.WithSingleGoal())
//	p, found, _ := astar.Search(g, lay.Start, lay.Goals[0])
//	fmt.Println(found, p)
package gridsearch
