// Package dsu provides a disjoint-set (union-find) structure over dense
// integer ids [0, n).
//
// What:
//
//   - Find(p):       representative root of p's component (path halving).
//   - Union(p, q):   merge two components; false if already joined.
//   - Connected:     Find(p) == Find(q).
//   - Count:         live number of components, n at start.
//
// Union is by size. On equal sizes q's root is attached under p's root, so
// the structure is fully deterministic for a given sequence of calls. Which
// root survives is never observable through Connected or Count.
//
// Complexity:
//
//   - New:            O(n) time and memory.
//   - Find/Union:     O(α(n)) amortized.
//
// Errors:
//
//   - ErrNegativeSize: New called with n < 0.
//
// Ids outside [0, Len()) are programmer errors and panic, like slice indexing.
// A DisjointSet is not safe for concurrent use.
package dsu
