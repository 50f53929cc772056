// Package racetrack counts shortcuts ("cheats") on a single-lane race track.
//
// The track uses the maze notation ('#' walls, 'S' start, 'E' end). Parse
// walks the fewest-step route with bfs.ShortestPath; a cheat jumps from one
// route cell to a later one through walls, covering at most maxJump
// Manhattan steps. Its saving is the route distance skipped minus the jump
// length, and Cheats counts the jumps saving at least threshold.
package racetrack
