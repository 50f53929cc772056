package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGet shows that lookups outside the grid report absence instead of
// panicking, which lets searches step blindly and check afterwards.
func ExampleGet() {
	g, _ := grid.ParseRunes("S.\n#E")

	for _, p := range []grid.Position{grid.Pos(0, 1), grid.Pos(1, 0), grid.Pos(-1, 0), grid.Pos(0, 2)} {
		if c, ok := grid.Get(g, p); ok {
			fmt.Printf("%v=%c\n", p, c)
			continue
		}
		fmt.Printf("%v absent\n", p)
	}
	// Output:
	// (0,1)=.
	// (1,0)=#
	// (-1,0) absent
	// (0,2) absent
}

// ExamplePosition_Neighbor walks the cardinal directions in canonical order.
func ExamplePosition_Neighbor() {
	p := grid.Pos(2, 2)
	for _, d := range grid.CardinalDirections {
		fmt.Printf("%s %v axis=%d\n", d, p.Neighbor(d), d.Axis())
	}
	// Output:
	// West (2,1) axis=1
	// North (1,2) axis=0
	// East (2,3) axis=1
	// South (3,2) axis=0
}
