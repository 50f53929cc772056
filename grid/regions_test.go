package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestRegions_Garden checks region discovery on a small garden plot.
//
//	AAAA
//	BBCD
//	BBCC
//	EEEC
//
// Expect five regions: A(4), B(4), C(4), D(1), E(3).
func TestRegions_Garden(t *testing.T) {
	g, err := grid.ParseRunes("AAAA\nBBCD\nBBCC\nEEEC")
	require.NoError(t, err)

	regions := grid.Regions(g)
	require.Len(t, regions, 5)

	byValue := map[rune][]grid.Position{}
	for _, r := range regions {
		byValue[g[r[0].X][r[0].Y]] = r
	}
	sizes := map[rune]int{}
	for k, r := range byValue {
		sizes[k] = len(r)
	}
	assert.Equal(t, map[rune]int{'A': 4, 'B': 4, 'C': 4, 'D': 1, 'E': 3}, sizes)

	perims := map[rune]int{}
	for k, r := range byValue {
		perims[k] = grid.Perimeter(r)
	}
	assert.Equal(t, map[rune]int{'A': 10, 'B': 8, 'C': 10, 'D': 4, 'E': 8}, perims)

	sides := map[rune]int{}
	for k, r := range byValue {
		sides[k] = grid.Sides(r)
	}
	assert.Equal(t, map[rune]int{'A': 4, 'B': 4, 'C': 8, 'D': 4, 'E': 4}, sides)
}

// TestSides_Holes counts the inner fence of an enclosed hole.
//
//	OOOOO
//	OXOXO
//	OOOOO
//	OXOXO
//	OOOOO
//
// The O region has 4 outer sides and 4 per hole.
func TestSides_Holes(t *testing.T) {
	g, err := grid.ParseRunes("OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO")
	require.NoError(t, err)

	regions := grid.Regions(g)
	require.Len(t, regions, 5)
	assert.Equal(t, 21, len(regions[0]))
	assert.Equal(t, 20, grid.Sides(regions[0]))
	assert.Equal(t, 36, grid.Perimeter(regions[0]))
}

// TestRegions_Disjoint verifies that equal values separated by another value
// form distinct regions.
func TestRegions_Disjoint(t *testing.T) {
	g := grid.Grid[int]{
		{1, 0, 1},
		{1, 0, 1},
	}
	regions := grid.Regions(g)
	sizes := make([]int, 0, len(regions))
	for _, r := range regions {
		sizes = append(sizes, len(r))
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 2, 2}, sizes)
}
