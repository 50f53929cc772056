// Package dirsearch implements a Dijkstra-style shortest-path search over
// grid cells where the mover has a facing direction and pays extra for
// every change of direction.
//
// State space:
//
//	The search does not run over cells but over (cell, facing) pairs.
//	Moving one cell straight ahead costs StepCost (1 by default); moving
//	after a change of facing costs StepCost+TurnCost (1+1000 by default).
//	Successors are generated through the four cardinal directions in the
//	fixed order West, North, East, South.
//
// Best-cost table:
//
//	Each cell owns four slots indexed by grid.Direction.Axis(). Opposite
//	facings (North/South, East/West) share a slot, so a cheap arrival
//	facing North also prunes a dearer arrival facing South. This collapsing
//	is kept on purpose: known puzzle answers depend on its exact pruning.
//	A successor is pushed when its cost is ≤ the slot; a popped state is
//	dropped when its cost is > the slot.
//
// Two passes:
//
//   - MinCost stops at the first goal pop and returns its cost.
//   - OptimalCells re-runs the search bounded by that minimum, records a
//     parent link for every arrival, keeps going after the first goal hit
//     and returns the union of cells on every goal-reaching chain whose cost
//     equals the minimum. Equal-cost arrivals at the same (cell, facing,
//     cost) share one arena entry with several parents instead of cloning
//     path histories.
//
// Start convention:
//
//	The start state faces East (WithStartFacing overrides), so a first move
//	East is charged StepCost only and any other first move pays TurnCost.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H states (plus duplicates from ≤ pushes).
//   - Space: O(S) for the table, queue and parent arena.
//
// Errors (sentinel):
//
//   - ErrNoPath            goal unreachable (a normal outcome, not a fault).
//   - ErrNilWallFunc       isWall is nil.
//   - ErrStartOutOfBounds  start outside the grid.
//   - ErrGoalOutOfBounds   goal outside the grid.
//   - ErrBadMinCost        OptimalCells called with a negative minimum.
//   - ErrOptionViolation   invalid option (non-positive step cost, negative
//     turn cost, non-cardinal start facing).
package dirsearch
