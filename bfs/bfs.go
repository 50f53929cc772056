package bfs

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
)

// errReached stops the walk once ShortestPath's goal has been enqueued.
var errReached = errors.New("bfs: goal reached")

// diagonals extends the cardinal moves in WithDiagonals mode.
var diagonals = [4]grid.Direction{grid.NorthEast, grid.SouthEast, grid.SouthWest, grid.NorthWest}

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	g      grid.Grid[T]
	isWall func(T) bool
	opts   Options
	moves  []grid.Direction
	queue  []queueItem
	res    *Result
	stopAt *grid.Position
}

// BFS runs breadth-first search on g starting from start, treating cells for
// which isWall reports true as impassable, applying any number of
// functional Options.
// Returns ErrNilWallFunc or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[T any](g grid.Grid[T], start grid.Position, isWall func(T) bool, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, isWall, opts)
	if err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}
	w.opts.Logger.WithFields(logrus.Fields{
		"start":   start.String(),
		"visited": len(w.res.Order),
	}).Debug("bfs finished")

	return w.res, nil
}

// ShortestPath returns the cells of one fewest-step path from start to goal,
// both included. The walk stops as soon as goal is discovered.
// Returns ErrNoPath when goal cannot be reached.
func ShortestPath[T any](g grid.Grid[T], start, goal grid.Position, isWall func(T) bool, opts ...Option) ([]grid.Position, error) {
	w, err := newWalker(g, start, isWall, opts)
	if err != nil {
		return nil, err
	}
	w.stopAt = &goal
	if start == goal {
		return []grid.Position{start}, nil
	}
	if err = w.loop(); err != nil && !errors.Is(err, errReached) {
		return nil, err
	}
	path, err := w.res.PathTo(goal)
	w.opts.Logger.WithFields(logrus.Fields{
		"start":   start.String(),
		"goal":    goal.String(),
		"visited": len(w.res.Order),
		"found":   err == nil,
	}).Debug("bfs shortest path")

	return path, err
}

// newWalker validates inputs, resolves options and seeds the queue.
func newWalker[T any](g grid.Grid[T], start grid.Position, isWall func(T) bool, opts []Option) (*walker[T], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if isWall == nil {
		return nil, ErrNilWallFunc
	}
	if !g.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}

	moves := append([]grid.Direction(nil), grid.CardinalDirections[:]...)
	if o.Diagonals {
		moves = append(moves, diagonals[:]...)
	}
	n := g.Height() * g.Width()
	w := &walker[T]{
		g:      g,
		isWall: isWall,
		opts:   o,
		moves:  moves,
		queue:  make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]grid.Position, 0, n),
			Depth:  make(map[grid.Position]int, n),
			Parent: make(map[grid.Position]grid.Position, n),
		},
	}
	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)

	return w, nil
}

// enqueue records p at depth d with its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[T]) enqueue(p grid.Position, d int, parent *grid.Position) {
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or goal discovery.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.pos, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors steps in every allowed direction, skips walls, cells off
// the grid, filtered moves and moves beyond MaxDepth, and enqueues each
// unseen cell. Returns errReached once the stop cell has been enqueued.
func (w *walker[T]) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, d := range w.moves {
		next, cell, ok := grid.NeighborInGrid(item.pos, d, w.g)
		if !ok || w.isWall(cell) {
			continue
		}
		if !w.opts.FilterNeighbor(item.pos, next) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[next]; seen {
			continue
		}
		parent := item.pos
		w.enqueue(next, nextDepth, &parent)
		if w.stopAt != nil && next == *w.stopAt {
			return errReached
		}
	}
	return nil
}
