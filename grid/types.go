// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNotFound indicates no cell holds the requested value.
	ErrNotFound = errors.New("grid: value not found")
)

// Grid is a rectangular matrix of cells indexed as g[x][y], x being the row.
// All rows must have equal length; Get relies on row 0 for the width.
type Grid[T any] [][]T

// Position is a grid coordinate. X is the row index, Y the column index.
// Positions are comparable and may be used directly as map keys.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Direction is one of the eight compass directions.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// CardinalDirections lists the four orthogonal directions in the fixed
// enumeration order used for successor generation.
var CardinalDirections = [4]Direction{West, North, East, South}

// AllDirections lists all eight directions clockwise from North.
var AllDirections = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// absDiff returns |a-b| for any signed integer type.
func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
