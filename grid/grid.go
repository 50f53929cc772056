package grid

import (
	"fmt"
	"strings"
)

// Height returns the number of rows.
func (g Grid[T]) Height() int {
	return len(g)
}

// Width returns the length of row 0, or 0 for an empty grid.
func (g Grid[T]) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether p lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (g Grid[T]) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Height() && p.Y >= 0 && p.Y < g.Width()
}

// At is the method form of Get.
func (g Grid[T]) At(p Position) (T, bool) {
	return Get(g, p)
}

// Get returns the cell at p and true, or the zero value and false when p is
// outside the grid. It never panics, whatever the coordinates.
// Complexity: O(1).
func Get[T any](g Grid[T], p Position) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.X][p.Y], true
}

// NeighborInGrid steps from p in direction d and returns the neighbor with
// its cell value. ok is false when the neighbor falls outside the grid.
// Complexity: O(1).
func NeighborInGrid[T any](p Position, d Direction, g Grid[T]) (n Position, cell T, ok bool) {
	n = p.Neighbor(d)
	cell, ok = Get(g, n)
	return n, cell, ok
}

// ParseRunes turns a newline-separated block of text into a rune grid.
// Trailing blank lines and '\r' are ignored. Returns ErrEmptyGrid for empty
// input and ErrNonRectangular when lines differ in length.
// Complexity: O(W×H) time and memory.
func ParseRunes(input string) (Grid[rune], error) {
	lines := strings.Split(strings.TrimRight(strings.ReplaceAll(input, "\r", ""), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	g := make(Grid[rune], 0, len(lines))
	w := -1
	for i, line := range lines {
		row := []rune(line)
		if w < 0 {
			w = len(row)
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
		g = append(g, row)
	}
	return g, nil
}

// Find returns the first position (row-major) holding v.
func Find[T comparable](g Grid[T], v T) (Position, bool) {
	for x, row := range g {
		for y, c := range row {
			if c == v {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// FindAll returns every position holding v, in row-major order.
func FindAll[T comparable](g Grid[T], v T) []Position {
	var out []Position
	for x, row := range g {
		for y, c := range row {
			if c == v {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// Count returns the number of cells equal to v.
func Count[T comparable](g Grid[T], v T) int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == v {
				n++
			}
		}
	}
	return n
}

// Filled builds a height×width grid with every cell set to v.
func Filled[T any](height, width int, v T) Grid[T] {
	g := make(Grid[T], height)
	for x := range g {
		row := make([]T, width)
		for y := range row {
			row[y] = v
		}
		g[x] = row
	}
	return g
}

// Clone deep-copies the grid so the copy can be mutated independently.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for x, row := range g {
		out[x] = append([]T(nil), row...)
	}
	return out
}

// Set writes v at p and reports whether p was inside the grid.
func (g Grid[T]) Set(p Position, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g[p.X][p.Y] = v
	return true
}

// String renders a rune grid line by line; other cell types use %v.
func (g Grid[T]) String() string {
	var b strings.Builder
	for x, row := range g {
		if x > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if r, ok := any(c).(rune); ok {
				b.WriteRune(r)
				continue
			}
			fmt.Fprintf(&b, "%v", c)
		}
	}
	return b.String()
}
