// Package bfs provides breadth-first search over the passable cells of a
// grid.Grid, returning unit-step distances, parent links and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual moves via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Four-way moves by default; WithDiagonals adds the four diagonals.
//
// Determinism
//
//	Neighbors are generated in grid.CardinalDirections order (then the
//	diagonals clockwise from NorthEast), so the visit sequence is fully
//	reproducible.
//
// Bounds
//
//	Every neighbor is read through grid.NeighborInGrid; cells off the grid
//	are silently skipped.
//
// Complexity (C = cells)
//
//   - Time:   O(C·d), d = 4 or 8
//   - Memory: O(C) for the queue and result maps
package bfs
