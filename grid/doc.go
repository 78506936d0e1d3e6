// Package grid models an m×n rectangular grid of cells as the input graph of
// a maze generator.
//
// What:
//
//   - Cells are dense integer ids in [0, m·n), addressed row-major:
//     row = id / m, col = id % m.
//   - A Wall is a candidate edge between two grid-adjacent cells. It also
//     carries the two lattice-corner nodes its drawn segment spans.
//   - The wall collection is exhaustive and non-redundant: exactly
//     2·m·n − m − n entries (m·(n−1) horizontal + n·(m−1) vertical).
//   - Geometry maps a node id to canvas coordinates using a uniform scale
//     derived from a fixed canvas extent divided by max(m, n).
//
// Layout (m = 3, n = 2):
//
//	nodes:  0───1───2───3
//	        │ 0 │ 1 │ 2 │      cells 0..5, nodes 0..11
//	        4───5───6───7      wall 0–3 spans nodes 4,5
//	        │ 3 │ 4 │ 5 │      wall 1–2 spans nodes 2,6
//	        8───9──10──11
//
// Horizontal walls separate a cell from the one directly below it and are
// enumerated first; vertical walls separate a cell from its right neighbour
// in the same row. Row-end cells have no right neighbour, so no wall ever
// wraps from the end of one row to the start of the next.
//
// Complexity:
//
//   - New:      O(m·n) time and memory.
//   - Point:    O(1).
//   - Lines:    O(m + n).
//
// Errors:
//
//   - ErrInvalidDimension: m < 1, n < 1, or 2·m·n overflows int.
//
// A Grid is immutable after New and safe for concurrent readers.
package grid
