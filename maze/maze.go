package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/dirsearch"
	"github.com/katalvlaran/gridpath/grid"
)

// Tile runes recognized by Parse.
const (
	Wall  = '#'
	Start = 'S'
	End   = 'E'
)

var (
	// ErrNoStart is returned when the input holds no 'S' tile.
	ErrNoStart = errors.New("maze: start tile not found")
	// ErrNoEnd is returned when the input holds no 'E' tile.
	ErrNoEnd = errors.New("maze: end tile not found")
	// ErrAmbiguous is returned when 'S' or 'E' appears more than once.
	ErrAmbiguous = errors.New("maze: start or end tile appears more than once")
)

// Maze is a parsed race track.
type Maze struct {
	Grid  grid.Grid[rune]
	Start grid.Position
	End   grid.Position
}

// IsWall reports whether r blocks movement.
func IsWall(r rune) bool { return r == Wall }

// Parse reads a maze from text. Grid shape errors from grid.ParseRunes are
// passed through; missing or repeated S/E tiles wrap grid.ErrNotFound or
// ErrAmbiguous.
func Parse(input string) (*Maze, error) {
	g, err := grid.ParseRunes(input)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	m := &Maze{Grid: g}
	for _, tile := range []struct {
		r       rune
		dst     *grid.Position
		missing error
	}{
		{Start, &m.Start, ErrNoStart},
		{End, &m.End, ErrNoEnd},
	} {
		switch n := grid.Count(g, tile.r); {
		case n == 0:
			return nil, fmt.Errorf("%w: %w", tile.missing, grid.ErrNotFound)
		case n > 1:
			return nil, fmt.Errorf("%w: %q found %d times", ErrAmbiguous, tile.r, n)
		}
		*tile.dst, _ = grid.Find(g, tile.r)
	}

	return m, nil
}

// LowestScore returns the cheapest race score from S to E.
func (m *Maze) LowestScore(opts ...dirsearch.Option) (int64, error) {
	return dirsearch.MinCost(m.Grid, m.Start, m.End, IsWall, opts...)
}

// BestSeats returns how many tiles lie on at least one lowest-scoring route,
// S and E included.
func (m *Maze) BestSeats(opts ...dirsearch.Option) (int, error) {
	res, err := m.Solve(opts...)
	if err != nil {
		return 0, err
	}
	return res.CellCount(), nil
}

// Solve runs both searches and returns the score together with the seats.
func (m *Maze) Solve(opts ...dirsearch.Option) (*dirsearch.Result, error) {
	return dirsearch.Solve(m.Grid, m.Start, m.End, IsWall, opts...)
}

// Render returns the maze text with every seat of res drawn as 'O'.
func (m *Maze) Render(res *dirsearch.Result) string {
	out := m.Grid.Clone()
	for _, p := range res.SortedCells() {
		out.Set(p, 'O')
	}
	return out.String()
}
