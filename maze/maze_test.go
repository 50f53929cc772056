package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dirsearch"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

const ring = `#####
#...#
#S#E#
#...#
#####
`

const smallMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const largeMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

func TestParse(t *testing.T) {
	m, err := maze.Parse(ring)
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(2, 1), m.Start)
	assert.Equal(t, grid.Pos(2, 3), m.End)
	assert.Equal(t, 5, m.Grid.Height())
	assert.Equal(t, 5, m.Grid.Width())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"Ragged", "#S\n#E#", grid.ErrNonRectangular},
		{"NoStart", "#.E#", maze.ErrNoStart},
		{"NoEnd", "#S.#", maze.ErrNoEnd},
		{"TwoStarts", "SSE", maze.ErrAmbiguous},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := maze.Parse("#.E#")
	assert.ErrorIs(t, err, grid.ErrNotFound)
}

// TestRing: both halves of the ring cost three turns and four steps.
func TestRing(t *testing.T) {
	m, err := maze.Parse(ring)
	require.NoError(t, err)

	score, err := m.LowestScore()
	require.NoError(t, err)
	assert.Equal(t, int64(3004), score)

	seats, err := m.BestSeats()
	require.NoError(t, err)
	assert.Equal(t, 8, seats)
}

// TestReindeerMazes pins the scores and seat counts of the two reference
// mazes, which depend on the shared-axis pruning of the search.
func TestReindeerMazes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		score int64
		seats int
	}{
		{"Small", smallMaze, 7036, 45},
		{"Large", largeMaze, 11048, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.Parse(tc.input)
			require.NoError(t, err)

			score, err := m.LowestScore()
			require.NoError(t, err)
			assert.Equal(t, tc.score, score)

			seats, err := m.BestSeats()
			require.NoError(t, err)
			assert.Equal(t, tc.seats, seats)
		})
	}
}

func TestCorridor(t *testing.T) {
	m, err := maze.Parse("#####\n#S.E#\n#####")
	require.NoError(t, err)

	res, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Cost)
	assert.Equal(t, 3, res.CellCount())
	assert.Equal(t, "#####\n#OOO#\n#####", m.Render(res))
}

// TestOptionsPassThrough: a cheaper turn changes the score, not the seats.
func TestOptionsPassThrough(t *testing.T) {
	m, err := maze.Parse(ring)
	require.NoError(t, err)

	score, err := m.LowestScore(dirsearch.WithTurnCost(10))
	require.NoError(t, err)
	assert.Equal(t, int64(34), score)

	seats, err := m.BestSeats(dirsearch.WithTurnCost(10))
	require.NoError(t, err)
	assert.Equal(t, 8, seats)
}

func TestWalledOff(t *testing.T) {
	m, err := maze.Parse("#####\n#S#E#\n#####")
	require.NoError(t, err)

	_, err = m.LowestScore()
	assert.ErrorIs(t, err, dirsearch.ErrNoPath)
	_, err = m.BestSeats()
	assert.ErrorIs(t, err, dirsearch.ErrNoPath)
}
