// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the start cell is off the grid.
	ErrStartOutOfBounds = errors.New("bfs: start position outside grid")

	// ErrNilWallFunc is returned if a nil wall predicate is passed.
	ErrNilWallFunc = errors.New("bfs: wall predicate is nil")

	// ErrNoPath is returned by PathTo and ShortestPath when the destination
	// was never reached.
	ErrNoPath = errors.New("bfs: no path to destination")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(p grid.Position, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p grid.Position, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p grid.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called for each move curr→next onto a passable cell.
	FilterNeighbor func(curr, next grid.Position) bool

	// Diagonals adds the four diagonal moves.
	Diagonals bool

	// Logger receives Debug-level progress; silent by default.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all moves allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - four-way moves
//   - discarding logger.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(grid.Position, int) {},
		OnDequeue:      func(grid.Position, int) {},
		OnVisit:        func(grid.Position, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Position) bool { return true },
		Logger:         logging.Discard(),
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p grid.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(curr, next grid.Position) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithDiagonals enables eight-way movement.
func WithDiagonals() Option {
	return func(o *Options) { o.Diagonals = true }
}

// WithLogger injects a logger for Debug-level progress output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Order  []grid.Position
	Depth  map[grid.Position]int
	Parent map[grid.Position]grid.Position
}

// PathTo reconstructs the path from the start cell to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest grid.Position) ([]grid.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []grid.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
