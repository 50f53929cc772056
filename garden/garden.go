// Package garden prices the fences around the plant regions of a garden map.
//
// Each rune of the map is a plot; orthogonally adjacent plots with the same
// rune form a region. Price charges area × perimeter per region, BulkPrice
// charges area × number of straight sides.
package garden

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Region is one connected patch of a single plant.
type Region struct {
	Plant     rune
	Plots     []grid.Position
	Perimeter int
	Sides     int
}

// Area is the number of plots in the region.
func (r Region) Area() int { return len(r.Plots) }

// Garden is a parsed map split into regions.
type Garden struct {
	Grid    grid.Grid[rune]
	Regions []Region
}

// Parse reads the map and measures every region.
func Parse(input string) (*Garden, error) {
	g, err := grid.ParseRunes(input)
	if err != nil {
		return nil, fmt.Errorf("garden: %w", err)
	}

	out := &Garden{Grid: g}
	for _, plots := range grid.Regions(g) {
		first := plots[0]
		out.Regions = append(out.Regions, Region{
			Plant:     g[first.X][first.Y],
			Plots:     plots,
			Perimeter: grid.Perimeter(plots),
			Sides:     grid.Sides(plots),
		})
	}
	return out, nil
}

// Price sums area × perimeter over all regions.
func (gd *Garden) Price() int {
	total := 0
	for _, r := range gd.Regions {
		total += r.Area() * r.Perimeter
	}
	return total
}

// BulkPrice sums area × sides over all regions.
func (gd *Garden) BulkPrice() int {
	total := 0
	for _, r := range gd.Regions {
		total += r.Area() * r.Sides
	}
	return total
}
