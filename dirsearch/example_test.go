// Package dirsearch_test provides runnable examples of the directional search.
package dirsearch_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/dirsearch"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSolve finds the cheapest route through a ring-shaped maze and the
// cells shared by all tied routes.
//
//	#####
//	#...#
//	#S#E#
//	#...#
//	#####
//
// Both routes turn three times: 4 moves + 3×1000 = 3004.
func ExampleSolve() {
	g, _ := grid.ParseRunes("#####\n#...#\n#S#E#\n#...#\n#####")
	start, _ := grid.Find(g, 'S')
	end, _ := grid.Find(g, 'E')

	res, err := dirsearch.Solve(g, start, end, func(c rune) bool { return c == '#' })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("cells:", res.CellCount())
	// Output:
	// cost: 3004
	// cells: 8
}

// ExampleMinCost_noPath shows that an unreachable goal is a normal outcome
// reported through ErrNoPath.
func ExampleMinCost_noPath() {
	g, _ := grid.ParseRunes("S#E")
	_, err := dirsearch.MinCost(g, grid.Pos(0, 0), grid.Pos(0, 2), func(c rune) bool { return c == '#' })
	fmt.Println(errors.Is(err, dirsearch.ErrNoPath))
	// Output: true
}
