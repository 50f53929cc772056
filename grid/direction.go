package grid

import "strings"

// vectors maps each Direction to its unit step. North decreases the row.
var vectors = [8]Position{
	North:     {X: -1, Y: 0},
	NorthEast: {X: -1, Y: 1},
	East:      {X: 0, Y: 1},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 1, Y: 0},
	SouthWest: {X: 1, Y: -1},
	West:      {X: 0, Y: -1},
	NorthWest: {X: -1, Y: -1},
}

var names = [8]string{
	North:     "North",
	NorthEast: "NorthEast",
	East:      "East",
	SouthEast: "SouthEast",
	South:     "South",
	SouthWest: "SouthWest",
	West:      "West",
	NorthWest: "NorthWest",
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Vector returns the unit step of d. An invalid direction yields the zero step.
func (d Direction) Vector() Position {
	if !d.Valid() {
		return Position{}
	}
	return vectors[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// TurnRight rotates d by 90° clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 2) % 8
}

// TurnLeft rotates d by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 6) % 8
}

// IsCardinal reports whether d is one of North, East, South, West.
func (d Direction) IsCardinal() bool {
	return d.Valid() && d%2 == 0
}

// Axis buckets d into one of four slots:
//
//	North, South         → 0
//	East, West           → 1
//	NorthEast, SouthWest → 2
//	SouthEast, NorthWest → 3
//
// Opposite directions always share a slot. Searches index their per-cell
// best-cost tables by this value.
func (d Direction) Axis() int {
	switch d {
	case North, South:
		return 0
	case East, West:
		return 1
	case NorthEast, SouthWest:
		return 2
	default:
		return 3
	}
}

// String returns the direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(?)"
	}
	return names[d]
}

// ParseDirection maps a case-insensitive name or compass abbreviation
// ("north", "N", "se", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, true
	case "ne", "northeast":
		return NorthEast, true
	case "e", "east":
		return East, true
	case "se", "southeast":
		return SouthEast, true
	case "s", "south":
		return South, true
	case "sw", "southwest":
		return SouthWest, true
	case "w", "west":
		return West, true
	case "nw", "northwest":
		return NorthWest, true
	}
	return North, false
}
