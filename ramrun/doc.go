// Package ramrun simulates bytes falling into a square memory space and
// measures the shortest walk from the top-left corner to the bottom-right.
//
// Input lines have the form "X,Y" where X is the distance from the left
// edge and Y the distance from the top. Parse converts them to
// grid.Position values (row = Y, column = X). Coordinates run from 0 to
// size inclusive, so the memory space is (size+1)×(size+1) cells.
//
// MinSteps counts unit moves after the first n bytes have fallen, using
// bfs.ShortestPath. FirstBlocker binary-searches the byte count for the
// first byte that cuts the exit off.
package ramrun
