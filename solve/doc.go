// Package solve walks a finished maze through its erased walls.
//
// BFS explores cells in increasing passage distance from a start cell, with
// optional context cancellation and a visit hook. In a perfect maze the
// BFS tree is the maze itself, so Path returns the one and only route
// between two cells. Verify checks that a maze really is perfect: every
// cell reachable and no cycle among the erased walls.
//
// Errors:
//
//   - ErrNilMaze:       nil maze or maze without a grid.
//   - ErrCellNotFound:  start or goal outside the grid.
//   - ErrNotSpanning:   some cell cannot be reached from cell 0.
//   - ErrCycle:         more erased walls than a tree over the cells allows.
//   - ErrOptionViolation: nil context or hook.
//
// Complexity: O(C + E) time and memory, C cells, E erased walls.
package solve
