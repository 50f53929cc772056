package ramrun

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrBadLine is returned for a line that is not "X,Y" with integer X, Y.
	ErrBadLine = errors.New("ramrun: malformed byte coordinate")
	// ErrOutOfRange is returned when a byte lands outside the memory space
	// or more bytes are requested than were parsed.
	ErrOutOfRange = errors.New("ramrun: value out of range")
	// ErrNeverBlocked is returned by FirstBlocker when the exit stays
	// reachable after every byte has fallen.
	ErrNeverBlocked = errors.New("ramrun: exit is never cut off")
)

// Parse reads one "X,Y" coordinate per line. Blank lines are skipped.
func Parse(input string) ([]grid.Position, error) {
	var out []grid.Position
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadLine, i+1, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadLine, i+1, err)
		}
		out = append(out, grid.Pos(y, x))
	}
	return out, nil
}

// Format renders p back in input notation.
func Format(p grid.Position) string {
	return fmt.Sprintf("%d,%d", p.Y, p.X)
}

// Corrupt returns the memory space after the first n bytes have fallen;
// true marks a corrupted cell.
func Corrupt(bytes []grid.Position, size, n int) (grid.Grid[bool], error) {
	if size < 0 || n < 0 || n > len(bytes) {
		return nil, fmt.Errorf("%w: size=%d n=%d of %d bytes", ErrOutOfRange, size, n, len(bytes))
	}
	g := grid.Filled(size+1, size+1, false)
	for _, p := range bytes[:n] {
		if !g.Set(p, true) {
			return nil, fmt.Errorf("%w: byte %s outside 0..%d", ErrOutOfRange, Format(p), size)
		}
	}
	return g, nil
}

// MinSteps returns the fewest moves from (0,0) to (size,size) after the
// first n bytes have fallen. Returns bfs.ErrNoPath when the exit is cut off.
func MinSteps(bytes []grid.Position, size, n int, opts ...bfs.Option) (int, error) {
	g, err := Corrupt(bytes, size, n)
	if err != nil {
		return 0, err
	}
	path, err := bfs.ShortestPath(g, grid.Pos(0, 0), grid.Pos(size, size), isCorrupt, opts...)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// FirstBlocker returns the first byte after which the exit is unreachable.
// The search bisects over [from, len(bytes)]; when the exit is already cut
// off after `from` bytes it restarts from zero bytes, so the result never
// depends on a wrong hint.
func FirstBlocker(bytes []grid.Position, size, from int, opts ...bfs.Option) (grid.Position, error) {
	if from < 0 || from > len(bytes) {
		return grid.Position{}, fmt.Errorf("%w: from=%d of %d bytes", ErrOutOfRange, from, len(bytes))
	}

	var searchErr error
	blocked := func(n int) bool {
		if searchErr != nil {
			return true
		}
		_, err := MinSteps(bytes, size, n, opts...)
		if err != nil && !errors.Is(err, bfs.ErrNoPath) {
			searchErr = err
		}
		return err != nil
	}

	// 1) The lower end of the bisection must leave the exit reachable.
	if from > 0 && blocked(from) {
		from = 0
	}
	if blocked(from) {
		if searchErr != nil {
			return grid.Position{}, searchErr
		}
		return grid.Position{}, fmt.Errorf("%w: exit blocked before any byte fell", ErrOutOfRange)
	}

	// 2) Smallest n in (from, len] with the exit cut off.
	n := from + 1 + sort.Search(len(bytes)-from, func(i int) bool { return blocked(from + 1 + i) })
	if searchErr != nil {
		return grid.Position{}, searchErr
	}
	if n > len(bytes) {
		return grid.Position{}, ErrNeverBlocked
	}
	return bytes[n-1], nil
}

func isCorrupt(b bool) bool { return b }
