// Package floodfill finds shortest hop-count paths from one start cell to
// many goal cells at once with a breadth-first "flood fill" over a grid.Grid.
//
// What
//
//   - Expands cells in FIFO order using 4-directional movement in the fixed
//     order up, right, down, left, so the expansion order is reproducible.
//   - When a goal is dequeued for the first time its path is reconstructed
//     immediately and stored in the result, keyed by the goal position.
//   - Stops as soon as every distinct goal has been reached, or when the
//     frontier runs dry.
//   - Each cell is enqueued at most once (admission is gated on the visited
//     set), so no re-relaxation is ever needed.
//
// Why
//
//	BFS dequeues cells in non-decreasing distance order, hence the first
//	time a goal is dequeued its path is a shortest one in hop count.
//
// Outcomes
//
//   - A goal that cannot be reached is simply absent from the result map.
//   - An empty map means nothing was reachable (or the start cell is out
//     of bounds / an Obstacle); it is not an error.
//   - A goal equal to start yields a single-position path.
//
// Tracing
//
//	WithRecorder attaches a trace.Recorder that receives, after every
//	dequeue, the current cell, a copy of the visited set, and a copy of the
//	distance map.
//
// Step-by-step use
//
//	NewStepper exposes the same search one expansion at a time; Search and
//	Run simply step until done. Stop stepping to abandon a search early.
//
// Complexity (R×C grid)
//
//   - Time:   O(R×C)
//   - Memory: O(R×C) for visited, predecessor and distance maps.
package floodfill
