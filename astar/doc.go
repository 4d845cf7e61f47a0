// Package astar implements weighted A* search from a start cell to a single
// goal cell on a grid.Grid, with optional 8-directional movement.
//
// What
//
//   - Movement: the four orthogonal moves (cost 1) always; the four diagonal
//     moves (cost √2) when WithDiagonal is set. A move is allowed whenever
//     the destination is inside the grid and not an Obstacle; diagonals do
//     not require the two flanking orthogonal cells to be free.
//   - Heuristic: Manhattan distance without diagonals, Euclidean distance
//     with diagonals. Both are admissible and consistent for their movement
//     model, so the first expansion of the goal is optimal.
//   - Frontier: a binary min-heap keyed by f = g + h. Equal f values pop in
//     insertion order (FIFO), which makes results reproducible call to call.
//   - Lazy deletion: a node may sit in the heap several times; popping one
//     that was already expanded is simply skipped. No decrease-key.
//
// Outcomes
//
//	Search returns (path, true, nil) on success and (nil, false, nil) when
//	the goal cannot be reached. "No path" is never an error.
//
// Tracing
//
//	WithRecorder attaches a trace.Recorder that receives, for every
//	non-duplicate pop, the node, the expanded set, their settled costs, the
//	frontier set, and each frontier node's rank in pop order.
//
// Complexity (N = R×C cells, d = 4 or 8)
//
//   - Time:   O(N·d·log(N·d))
//   - Memory: O(N·d) worst case for the heap under lazy deletion.
package astar
