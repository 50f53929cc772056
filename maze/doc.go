// Package maze scores reindeer races through a walled text maze.
//
// A maze is a rectangular block of runes where '#' is a wall, 'S' marks the
// start tile and 'E' the end tile. The reindeer starts on S facing East.
// Each forward step costs 1 point and each quarter turn taken before a step
// costs 1000, so LowestScore is a dirsearch.MinCost over the parsed grid and
// BestSeats counts the tiles that lie on any lowest-scoring route.
//
// Both operations accept dirsearch options, so step cost, turn cost, start
// facing and logging can be overridden per call.
package maze
