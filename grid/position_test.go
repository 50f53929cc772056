package grid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestNeighbor_Vectors checks every direction's unit step against a fixed origin.
func TestNeighbor_Vectors(t *testing.T) {
	origin := grid.Pos(5, 5)
	cases := []struct {
		dir  grid.Direction
		want grid.Position
	}{
		{grid.North, grid.Pos(4, 5)},
		{grid.NorthEast, grid.Pos(4, 6)},
		{grid.East, grid.Pos(5, 6)},
		{grid.SouthEast, grid.Pos(6, 6)},
		{grid.South, grid.Pos(6, 5)},
		{grid.SouthWest, grid.Pos(6, 4)},
		{grid.West, grid.Pos(5, 4)},
		{grid.NorthWest, grid.Pos(4, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, origin.Neighbor(tc.dir))
		})
	}
}

// TestNeighbor_InverseCancels verifies that stepping then stepping back is the
// identity, including at the extremes of int where arithmetic wraps.
func TestNeighbor_InverseCancels(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	points := []grid.Position{
		grid.Pos(0, 0),
		grid.Pos(math.MaxInt, math.MinInt),
		grid.Pos(math.MinInt, math.MaxInt),
	}
	for i := 0; i < 200; i++ {
		points = append(points, grid.Pos(r.Intn(2000)-1000, r.Intn(2000)-1000))
	}
	for _, p := range points {
		for _, d := range grid.AllDirections {
			require.Equal(t, p, p.Neighbor(d).Neighbor(d.Opposite()), "p=%v d=%v", p, d)
		}
	}
}

// TestDirection_Axis checks the four-slot axis buckets and that opposite
// directions always share a slot.
func TestDirection_Axis(t *testing.T) {
	want := map[grid.Direction]int{
		grid.North: 0, grid.South: 0,
		grid.East: 1, grid.West: 1,
		grid.NorthEast: 2, grid.SouthWest: 2,
		grid.SouthEast: 3, grid.NorthWest: 3,
	}
	for d, axis := range want {
		assert.Equal(t, axis, d.Axis(), "axis of %v", d)
		assert.Equal(t, d.Axis(), d.Opposite().Axis(), "opposite of %v", d)
	}
}

// TestDirection_Turns verifies 90° rotations and cardinal classification.
func TestDirection_Turns(t *testing.T) {
	assert.Equal(t, grid.East, grid.North.TurnRight())
	assert.Equal(t, grid.West, grid.North.TurnLeft())
	assert.Equal(t, grid.SouthWest, grid.SouthEast.TurnRight())
	for _, d := range grid.AllDirections {
		assert.Equal(t, d, d.TurnRight().TurnLeft())
		assert.Equal(t, d.Opposite(), d.TurnRight().TurnRight())
	}
	for _, d := range grid.CardinalDirections {
		assert.True(t, d.IsCardinal(), "%v", d)
	}
	assert.False(t, grid.NorthEast.IsCardinal())
	assert.Equal(t, [4]grid.Direction{grid.West, grid.North, grid.East, grid.South}, grid.CardinalDirections)
}

// TestParseDirection covers names, abbreviations and rejects junk.
func TestParseDirection(t *testing.T) {
	for in, want := range map[string]grid.Direction{
		"east": grid.East, "E": grid.East, " North ": grid.North, "sw": grid.SouthWest, "NorthWest": grid.NorthWest,
	} {
		got, ok := grid.ParseDirection(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := grid.ParseDirection("up")
	assert.False(t, ok)
}

// TestPosition_Order checks the X-then-Y total order and arithmetic helpers.
func TestPosition_Order(t *testing.T) {
	a, b, c := grid.Pos(1, 9), grid.Pos(2, 0), grid.Pos(2, 3)
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
	assert.Equal(t, 0, c.Compare(grid.Pos(2, 3)))
	assert.Equal(t, grid.Pos(3, 12), a.Add(c))
	assert.Equal(t, grid.Pos(-1, 6), a.Sub(c))
	assert.Equal(t, 7, a.Manhattan(c))
	assert.Equal(t, "(1,9)", a.String())
	assert.Equal(t, []grid.Position{grid.Pos(1, 8), grid.Pos(0, 9)}, a.Neighbors(grid.West, grid.North))
}
