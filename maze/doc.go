// Package maze turns a grid's wall collection into a uniformly random
// spanning tree, i.e. a perfect maze, and reports which walls disappear.
//
// What & Why
//
//   - A perfect maze has exactly one path between any two cells. Treating
//     cells as vertices and walls as edges, that is a spanning tree of the
//     grid graph. Removing the walls of a spanning tree carves the maze.
//
//   - The generator is Kruskal's algorithm with random weights: shuffle
//     every wall once (Fisher–Yates, uniform), then scan. For each wall, if
//     its two cells are in different components of a disjoint set, union
//     them and erase the wall; otherwise keep it, since erasing it would
//     close a cycle. The scan stops as soon as one component remains.
//
// Lifecycle
//
//	NewGenerator ──► StateRunning ──Run()──► StateComplete
//
// A Generator runs exactly once. The transition to StateComplete happens on
// the union that brings the component count to 1 (immediately for a 1×1
// grid). There is no cancellation: the scan is bounded by the wall count.
//
// Reporting
//
// Generation is pure data. A Reporter receives the grid geometry before the
// scan (Begin), one EraseEvent per successful union in order (Erase), and
// the final Summary (End). Renderers, loggers and recorders are all
// Reporters; Tee fans one run out to several of them.
//
// Determinism
//
// The shuffle is the only source of randomness. WithSeed, WithRand or an
// explicit WithOrder permutation fix it, and with it the whole erase-event
// sequence. Without any of them a clock-derived seed is drawn and reported
// in Summary.Seed so the run can be replayed.
//
// Errors
//
//   - ErrNilGrid:            NewGenerator(nil).
//   - ErrOptionViolation:    nil reporter/rand, or WithOrder not a permutation.
//   - ErrInvariantViolation: the scan ran out of walls with more than one
//     component left. It cannot happen for a grid built by grid.New and
//     signals a defect in wall construction, never bad luck in the shuffle.
//   - ErrAlreadyRun:         Run called twice.
//
// Complexity: O(W) shuffle + O(W·α(C)) scan, O(W + C) memory,
// where W = 2·m·n − m − n walls and C = m·n cells.
package maze
