package dirsearch

import (
	"container/heap"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
)

// unreached marks a best-cost slot no state has claimed yet.
const unreached = math.MaxInt64

// MinCost returns the minimum cost of moving from start to goal over g,
// where cells for which isWall reports true are impassable.
//
// Returns:
//
//   - cost: the cost of the first goal state popped from the queue.
//   - err:  ErrNoPath when the queue empties without reaching the goal,
//     or a validation error (see package docs).
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H.
//   - Space: O(S).
func MinCost[T any](g grid.Grid[T], start, goal grid.Position, isWall func(T) bool, opts ...Option) (int64, error) {
	// 1) Build and validate Options and inputs
	cfg, err := configure(g, start, goal, isWall, opts)
	if err != nil {
		return 0, err
	}

	// 2) Run an unbounded pass that stops at the first goal pop
	r := newRunner(g, start, goal, isWall, cfg, modeMinCost, unreached)
	cost, found := r.run()
	if !found {
		return 0, ErrNoPath
	}

	return cost, nil
}

// OptimalCells returns every cell lying on at least one route from start to
// goal whose total cost equals minCost, normally the value returned by
// MinCost with the same options.
//
// States costing more than minCost are pruned; exploration continues after
// the first goal hit so that every tied route contributes its cells.
// An empty set comes back with ErrNoPath.
//
// Complexity:
//
//   - Time:  O(S log S + P), P = parent links recorded.
//   - Space: O(S + P).
func OptimalCells[T any](g grid.Grid[T], start, goal grid.Position, isWall func(T) bool, minCost int64, opts ...Option) (map[grid.Position]struct{}, error) {
	cfg, err := configure(g, start, goal, isWall, opts)
	if err != nil {
		return nil, err
	}
	if minCost < 0 {
		return nil, ErrBadMinCost
	}

	r := newRunner(g, start, goal, isWall, cfg, modeAllCells, minCost)
	if _, found := r.run(); !found {
		return map[grid.Position]struct{}{}, ErrNoPath
	}

	return r.cells, nil
}

// CountOptimalCells is OptimalCells reduced to its cardinality.
func CountOptimalCells[T any](g grid.Grid[T], start, goal grid.Position, isWall func(T) bool, minCost int64, opts ...Option) (int, error) {
	cells, err := OptimalCells(g, start, goal, isWall, minCost, opts...)
	return len(cells), err
}

// Solve runs both passes: MinCost, then OptimalCells seeded with its result.
func Solve[T any](g grid.Grid[T], start, goal grid.Position, isWall func(T) bool, opts ...Option) (*Result, error) {
	cost, err := MinCost(g, start, goal, isWall, opts...)
	if err != nil {
		return nil, err
	}
	cells, err := OptimalCells(g, start, goal, isWall, cost, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{Cost: cost, Cells: cells}, nil
}

// configure applies opts over DefaultOptions and validates the call.
func configure[T any](g grid.Grid[T], start, goal grid.Position, isWall func(T) bool, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if isWall == nil {
		return cfg, ErrNilWallFunc
	}
	if !g.InBounds(start) {
		return cfg, ErrStartOutOfBounds
	}
	if !g.InBounds(goal) {
		return cfg, ErrGoalOutOfBounds
	}

	return cfg, nil
}

// mode selects what a runner does when it pops the goal.
type mode int

const (
	modeMinCost  mode = iota // stop at the first goal pop
	modeAllCells             // collect every goal chain at the bound
)

func (m mode) String() string {
	if m == modeMinCost {
		return "min-cost"
	}
	return "all-cells"
}

// state is one arena entry: a (cell, facing) pair reached at a given cost.
// parents lists the arena indices it was reached from; it is only filled in
// modeAllCells.
type state struct {
	pos     grid.Position
	dir     grid.Direction
	cost    int64
	parents []int
}

// stateKey identifies queued states that are interchangeable.
type stateKey struct {
	pos  grid.Position
	dir  grid.Direction
	cost int64
}

// runner holds the mutable state for a single search pass.
type runner[T any] struct {
	g           grid.Grid[T]               // read only through grid.NeighborInGrid
	isWall      func(T) bool               // impassable-cell predicate
	opts        Options                    // costs, start facing and logger
	start, goal grid.Position              // endpoints
	mode        mode                       // min-cost or all-cells
	bound       int64                      // states above this cost are pruned
	width       int                        // row length, for cell indexing
	best        [][4]int64                 // per-cell best cost, one slot per axis
	arena       []state                    // every state ever pushed
	queued      map[stateKey]int           // pushed but not yet popped → arena index
	pq          stateQueue                 // min-heap over arena indices
	seq         int                        // insertion counter for tie-breaking
	cells       map[grid.Position]struct{} // optimal-path cells (modeAllCells)
	walked      map[int]struct{}           // arena entries already unioned
	st          stats
	log         logrus.FieldLogger
}

func newRunner[T any](g grid.Grid[T], start, goal grid.Position, isWall func(T) bool, cfg Options, m mode, bound int64) *runner[T] {
	r := &runner[T]{
		g:      g,
		isWall: isWall,
		opts:   cfg,
		start:  start,
		goal:   goal,
		mode:   m,
		bound:  bound,
		width:  g.Width(),
		queued: make(map[stateKey]int),
		log: cfg.Logger.WithFields(logrus.Fields{
			"mode":  m.String(),
			"start": start.String(),
			"goal":  goal.String(),
		}),
	}
	if m == modeAllCells {
		r.cells = make(map[grid.Position]struct{})
		r.walked = make(map[int]struct{})
	}

	return r
}

// init sets every slot to unreached and pushes the start state at cost 0.
func (r *runner[T]) init() {
	r.best = make([][4]int64, r.g.Height()*r.width)
	for i := range r.best {
		r.best[i] = [4]int64{unreached, unreached, unreached, unreached}
	}
	r.best[r.cellIndex(r.start)][r.opts.StartFacing.Axis()] = 0

	heap.Init(&r.pq)
	r.push(-1, r.start, r.opts.StartFacing, 0)
}

// run is the main loop. In modeMinCost it returns at the first goal pop;
// in modeAllCells it drains the queue and reports whether any goal chain
// was collected.
func (r *runner[T]) run() (int64, bool) {
	r.init()
	r.log.WithFields(logrus.Fields{
		"step_cost": r.opts.StepCost,
		"turn_cost": r.opts.TurnCost,
		"facing":    r.opts.StartFacing.String(),
	}).Debug("search started")

	found := false
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state and forget it as a merge target.
		item := heap.Pop(&r.pq).(queueItem)
		s := r.arena[item.id]
		delete(r.queued, stateKey{pos: s.pos, dir: s.dir, cost: s.cost})

		// 2) Drop it if a cheaper arrival claimed its axis slot, or if it
		//    exceeds the bound.
		if s.cost > r.best[r.cellIndex(s.pos)][s.dir.Axis()] || s.cost > r.bound {
			r.st.pruned++
			continue
		}

		// 3) Goal handling. The goal is never expanded further.
		if s.pos == r.goal {
			if r.mode == modeMinCost {
				r.done("goal reached", s.cost)
				return s.cost, true
			}
			if s.cost == r.bound {
				r.collect(item.id)
				found = true
			}
			continue
		}

		// 4) Relax the four cardinal successors.
		r.st.expanded++
		r.expand(item.id, s)
	}

	if !found {
		r.done("queue exhausted without reaching goal", 0)
		return 0, false
	}
	r.done("optimal cells collected", r.bound)

	return r.bound, true
}

// expand generates successors of s in the canonical West, North, East, South
// order. Out-of-grid and wall cells are skipped; a successor is kept when
// its cost does not exceed the best cost recorded for its (cell, axis) slot.
func (r *runner[T]) expand(id int, s state) {
	var (
		next grid.Position
		cell T
		ok   bool
		cost int64
	)
	for _, d := range grid.CardinalDirections {
		next, cell, ok = grid.NeighborInGrid(s.pos, d, r.g)
		if !ok || r.isWall(cell) {
			continue
		}

		cost = s.cost + r.opts.StepCost
		if d != s.dir {
			cost += r.opts.TurnCost
		}
		if cost > r.bound {
			continue
		}

		// ≤ rather than < keeps every tied arrival for the all-cells pass.
		slot := &r.best[r.cellIndex(next)][d.Axis()]
		if cost > *slot {
			continue
		}
		*slot = cost
		r.push(id, next, d, cost)
	}
}

// push enqueues (pos, dir, cost) reached from arena entry parent (-1 for the
// start). An identical state still waiting in the queue absorbs the arrival
// as an extra parent instead of being queued twice.
func (r *runner[T]) push(parent int, pos grid.Position, dir grid.Direction, cost int64) {
	key := stateKey{pos: pos, dir: dir, cost: cost}
	if j, ok := r.queued[key]; ok {
		if r.mode == modeAllCells && parent >= 0 {
			r.arena[j].parents = append(r.arena[j].parents, parent)
		}
		r.st.merged++
		return
	}

	s := state{pos: pos, dir: dir, cost: cost}
	if r.mode == modeAllCells && parent >= 0 {
		s.parents = []int{parent}
	}
	r.arena = append(r.arena, s)
	id := len(r.arena) - 1
	r.queued[key] = id

	heap.Push(&r.pq, queueItem{id: id, cost: cost, pos: pos, dir: dir, seq: r.seq})
	r.seq++
	r.st.pushed++
}

// collect unions the cells of every chain leading back from arena entry id
// to the start. Entries already walked for an earlier goal hit are skipped.
func (r *runner[T]) collect(id int) {
	stack := []int{id}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := r.walked[i]; seen {
			continue
		}
		r.walked[i] = struct{}{}
		r.cells[r.arena[i].pos] = struct{}{}
		stack = append(stack, r.arena[i].parents...)
	}
}

// cellIndex maps p to a row-major index. p must be inside the grid.
func (r *runner[T]) cellIndex(p grid.Position) int {
	return p.X*r.width + p.Y
}

func (r *runner[T]) done(msg string, cost int64) {
	r.log.WithFields(logrus.Fields{
		"cost":     cost,
		"pushed":   r.st.pushed,
		"merged":   r.st.merged,
		"expanded": r.st.expanded,
		"pruned":   r.st.pruned,
		"cells":    len(r.cells),
	}).Debug(msg)
}

// sortedCells returns the keys of cells ordered by (X, Y).
func sortedCells(cells map[grid.Position]struct{}) []grid.Position {
	out := make([]grid.Position, 0, len(cells))
	for p := range cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
