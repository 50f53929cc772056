package grid

import "fmt"

// Add returns the componentwise sum p+q.
// Signed overflow wraps; no bounds checking happens here.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p-q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neighbor returns the position one unit step away in direction d.
// Diagonal directions combine both axis offsets.
func (p Position) Neighbor(d Direction) Position {
	return p.Add(d.Vector())
}

// Neighbors returns p.Neighbor(d) for every d, in the order given.
func (p Position) Neighbors(ds ...Direction) []Position {
	out := make([]Position, 0, len(ds))
	for _, d := range ds {
		out = append(out, p.Neighbor(d))
	}
	return out
}

// Compare orders positions by X, then Y. It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

// Less reports whether p sorts before q.
func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Position) Manhattan(q Position) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
