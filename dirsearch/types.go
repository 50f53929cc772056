package dirsearch

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// Sentinel errors returned by the search.
var (
	// ErrNoPath indicates the goal cannot be reached from the start.
	ErrNoPath = errors.New("dirsearch: no path to goal")

	// ErrNilWallFunc indicates a nil wall predicate was passed.
	ErrNilWallFunc = errors.New("dirsearch: wall predicate is nil")

	// ErrStartOutOfBounds indicates the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("dirsearch: start position outside grid")

	// ErrGoalOutOfBounds indicates the goal position lies outside the grid.
	ErrGoalOutOfBounds = errors.New("dirsearch: goal position outside grid")

	// ErrBadMinCost indicates a negative known minimum was supplied.
	ErrBadMinCost = errors.New("dirsearch: minimum cost must be non-negative")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dirsearch: invalid option supplied")
)

const (
	// DefaultStepCost is charged for every single-cell move.
	DefaultStepCost int64 = 1

	// DefaultTurnCost is charged on top of the step cost when the move
	// changes the facing direction.
	DefaultTurnCost int64 = 1000
)

// Options configures a search.
//
// StepCost    – cost of one move (must be > 0).
// TurnCost    – extra cost of a move that changes direction (must be ≥ 0).
// StartFacing – facing of the start state (must be cardinal).
// Logger      – receives Debug-level progress; silent by default.
type Options struct {
	StepCost    int64
	TurnCost    int64
	StartFacing grid.Direction
	Logger      logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns StepCost=1, TurnCost=1000, StartFacing=East and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		StepCost:    DefaultStepCost,
		TurnCost:    DefaultTurnCost,
		StartFacing: grid.East,
		Logger:      logging.Discard(),
	}
}

// WithStepCost sets the cost of a straight move.
//
//	c > 0:  accepted
//	c <= 0: invalid option → ErrOptionViolation
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: StepCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the penalty added to a move that changes direction.
// Zero turns the search into a plain shortest-path search.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: TurnCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithStartFacing sets the facing of the start state.
func WithStartFacing(d grid.Direction) Option {
	return func(o *Options) {
		if !d.IsCardinal() {
			o.err = fmt.Errorf("%w: start facing must be cardinal (%v)", ErrOptionViolation, d)
			return
		}
		o.StartFacing = d
	}
}

// WithLogger injects a logger for Debug-level progress output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result bundles the answers of both passes.
type Result struct {
	// Cost is the minimum total cost from start to goal.
	Cost int64

	// Cells holds every cell on at least one minimum-cost route,
	// start and goal included.
	Cells map[grid.Position]struct{}
}

// CellCount returns len(r.Cells).
func (r *Result) CellCount() int {
	return len(r.Cells)
}

// SortedCells returns the optimal-path cells ordered by (X, Y).
func (r *Result) SortedCells() []grid.Position {
	return sortedCells(r.Cells)
}

// stats counts the work done by one search pass.
type stats struct {
	pushed   int // states entered into the queue
	merged   int // equal-cost arrivals folded into an existing state
	expanded int // states popped and expanded
	pruned   int // states popped and discarded
}
