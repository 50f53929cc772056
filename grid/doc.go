// Package grid provides the coordinate and lookup layer shared by every
// grid-shaped puzzle: an integer Position, the eight compass Directions,
// and a bounded accessor over rectangular [][]T matrices.
//
// What:
//
//   - Position is a (row, column) value type. X is the row, Y the column,
//     so North decreases X and East increases Y.
//   - Direction enumerates N, NE, E, SE, S, SW, W, NW. CardinalDirections
//     lists W, N, E, S in the canonical order used by the searches.
//   - Axis() buckets a Direction into one of four slots; opposite
//     directions share a slot.
//   - Grid[T] wraps [][]T. Get and NeighborInGrid return "absent" for any
//     position outside the matrix instead of panicking.
//
// Why:
//
//   - Search algorithms compute neighbor positions arithmetically and may
//     step off the map. Routing every read through Get removes the whole
//     class of index-out-of-range panics.
//
// Complexity:
//
//   - Position and Direction operations: O(1).
//   - Get, NeighborInGrid, InBounds:       O(1).
//   - ParseRunes, Find, FindAll, Count:    O(W×H).
//   - Regions:                              O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input text has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNotFound: MustFind-style lookups found no matching cell.
package grid
