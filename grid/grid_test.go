package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestParseRunes_Errors verifies that ParseRunes rejects empty or ragged inputs.
func TestParseRunes_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid},
		{"NonRectangular", "##\n#\n", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseRunes(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseRunes(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}

// TestParseRunes_Shape checks dimensions, CRLF handling and String round trip.
func TestParseRunes_Shape(t *testing.T) {
	g, err := grid.ParseRunes("#S.\r\n.E#\r\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, "#S.\n.E#", g.String())
}

// TestGet_InsideAndOutside checks that Get returns the exact stored cell for
// every inside position and absent for positions strictly outside, including
// extreme coordinates.
func TestGet_InsideAndOutside(t *testing.T) {
	g := grid.Grid[int]{
		{1, 2, 3},
		{4, 5, 6},
	}
	for x := 0; x < g.Height(); x++ {
		for y := 0; y < g.Width(); y++ {
			v, ok := grid.Get(g, grid.Pos(x, y))
			require.True(t, ok)
			assert.Equal(t, g[x][y], v)
		}
	}
	outside := []grid.Position{
		grid.Pos(-1, 0), grid.Pos(0, -1), grid.Pos(2, 0), grid.Pos(0, 3),
		grid.Pos(math.MinInt, 0), grid.Pos(0, math.MaxInt), grid.Pos(math.MaxInt, math.MaxInt),
	}
	for _, p := range outside {
		v, ok := grid.Get(g, p)
		assert.False(t, ok, "%v", p)
		assert.Zero(t, v)
		assert.False(t, g.InBounds(p))
	}

	var empty grid.Grid[rune]
	_, ok := empty.At(grid.Pos(0, 0))
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Width())
}

// TestNeighborInGrid covers stepping inside and off the edge.
func TestNeighborInGrid(t *testing.T) {
	g, err := grid.ParseRunes("ab\ncd")
	require.NoError(t, err)

	n, c, ok := grid.NeighborInGrid(grid.Pos(0, 0), grid.East, g)
	require.True(t, ok)
	assert.Equal(t, grid.Pos(0, 1), n)
	assert.Equal(t, 'b', c)

	n, c, ok = grid.NeighborInGrid(grid.Pos(0, 0), grid.SouthEast, g)
	require.True(t, ok)
	assert.Equal(t, grid.Pos(1, 1), n)
	assert.Equal(t, 'd', c)

	n, _, ok = grid.NeighborInGrid(grid.Pos(0, 0), grid.North, g)
	assert.False(t, ok)
	assert.Equal(t, grid.Pos(-1, 0), n)
}

// TestFindCountSet exercises the lookup and mutation helpers.
func TestFindCountSet(t *testing.T) {
	g, err := grid.ParseRunes("#.#\n.S.\n#.#")
	require.NoError(t, err)

	p, ok := grid.Find(g, 'S')
	require.True(t, ok)
	assert.Equal(t, grid.Pos(1, 1), p)

	_, ok = grid.Find(g, 'E')
	assert.False(t, ok)

	assert.Equal(t, 4, grid.Count(g, '#'))
	assert.Equal(t, []grid.Position{grid.Pos(0, 1), grid.Pos(1, 0), grid.Pos(1, 2), grid.Pos(2, 1)}, grid.FindAll(g, '.'))

	c := g.Clone()
	assert.True(t, c.Set(grid.Pos(1, 1), '.'))
	assert.False(t, c.Set(grid.Pos(3, 1), '.'))
	assert.Equal(t, 'S', g[1][1], "clone must not alias the source")

	f := grid.Filled(2, 3, '.')
	assert.Equal(t, "...\n...", f.String())
}
