package racetrack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// ErrBadParam is returned for a non-positive jump or negative threshold.
var ErrBadParam = errors.New("racetrack: invalid cheat parameter")

// Track is a parsed race track with its fewest-step route.
type Track struct {
	Grid  grid.Grid[rune]
	Start grid.Position
	End   grid.Position
	// Path lists the route from Start to End; a cell's index is its
	// distance from Start.
	Path []grid.Position
}

// Parse reads the track and computes its route. Returns bfs.ErrNoPath when
// E cannot be reached.
func Parse(input string, opts ...bfs.Option) (*Track, error) {
	m, err := maze.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}
	path, err := bfs.ShortestPath(m.Grid, m.Start, m.End, maze.IsWall, opts...)
	if err != nil {
		return nil, err
	}
	return &Track{Grid: m.Grid, Start: m.Start, End: m.End, Path: path}, nil
}

// Length is the number of steps of the honest route.
func (t *Track) Length() int { return len(t.Path) - 1 }

// Cheats counts pairs of route cells i < j with Manhattan distance
// d ≤ maxJump and j-i-d ≥ threshold.
//
// Complexity: O(L²), L = route length.
func (t *Track) Cheats(maxJump, threshold int) (int, error) {
	if maxJump < 1 || threshold < 0 {
		return 0, fmt.Errorf("%w: maxJump=%d threshold=%d", ErrBadParam, maxJump, threshold)
	}
	n := 0
	for i, from := range t.Path {
		// a saving of threshold needs j ≥ i+threshold+1 at least
		for j := i + threshold + 1; j < len(t.Path); j++ {
			d := from.Manhattan(t.Path[j])
			if d <= maxJump && j-i-d >= threshold {
				n++
			}
		}
	}
	return n, nil
}
