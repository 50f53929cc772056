// Package gridpath is a small toolkit for grid puzzles: bounded 2D grids,
// compass directions, generic undirected graphs, and shortest-path searches
// that understand facing and turns.
//
// What is in the box?
//
//	• grid/      — Position, Direction, Grid[T] with bounds-checked access,
//	               text parsing, flood-fill regions
//	• graph/     — Graph[N] over hash-set adjacency, triangles, cliques
//	• bfs/       — unit-step breadth-first search over grid cells with hooks
//	• dirsearch/ — turn-penalized cheapest route and the set of cells lying
//	               on any cheapest route
//	• maze/, ramrun/, lanparty/, garden/, racetrack/ — puzzle front ends
//	               built on the above
//	• cmd/gridpath — command-line runner (cobra + viper + logrus)
//
// Coordinates
//
//	Position.X is the row (growing downward), Position.Y the column
//	(growing rightward). North is (-1,0), East is (0,+1).
//
// Quick start:
//
//	g, _ := grid.ParseRunes("S..\n.#.\n..E")
//	res, err := dirsearch.Solve(g, grid.Pos(0, 0), grid.Pos(2, 2),
//		func(r rune) bool { return r == '#' })
//	// res.Cost == 1004, res.CellCount() == 5
//
// See each subpackage's doc.go for details and complexity notes.
package gridpath
