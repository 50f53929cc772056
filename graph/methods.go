package graph

import (
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/maps"
)

// Directed reports whether the graph records one-way edges.
func (g *Graph[N]) Directed() bool {
	return g.directed
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int {
	return len(g.order)
}

// AddNode inserts n with an empty neighbor set if absent.
// If n already exists, this is a no-op.
//
// Complexity: O(1) amortized
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.adj[n]; ok {
		return
	}
	g.adj[n] = mapset.New[N]()
	g.index[n] = len(g.order)
	g.order = append(g.order, n)
}

// HasNode reports whether n was ever added, directly or as an edge endpoint.
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.adj[n]
	return ok
}

// AddEdge connects a and b, auto-adding missing endpoints.
// For undirected graphs, b becomes a neighbor of a and vice versa.
// Repeating the call leaves the graph unchanged.
//
// Complexity: O(1) amortized
func (g *Graph[N]) AddEdge(a, b N) {
	g.AddNode(a)
	g.AddNode(b)
	g.adj[a].Put(b)
	if !g.directed {
		g.adj[b].Put(a)
	}
}

// HasEdge reports whether b is a neighbor of a.
// Complexity: O(1)
func (g *Graph[N]) HasEdge(a, b N) bool {
	s, ok := g.adj[a]
	return ok && s.Has(b)
}

// Neighbors returns the live neighbor set of a. ok is false if a was never
// added. Callers must not mutate the returned set.
// Complexity: O(1)
func (g *Graph[N]) Neighbors(a N) (mapset.Set[N], bool) {
	s, ok := g.adj[a]
	return s, ok
}

// NeighborList returns the neighbors of a in node insertion order.
// Complexity: O(d log d)
func (g *Graph[N]) NeighborList(a N) []N {
	s, ok := g.adj[a]
	if !ok {
		return nil
	}
	out := make([]N, 0, s.Size())
	s.Each(func(n N) { out = append(out, n) })
	g.sortByIndex(out)
	return out
}

// Degree returns the size of a's neighbor set (0 when absent).
func (g *Graph[N]) Degree(a N) int {
	if s, ok := g.adj[a]; ok {
		return s.Size()
	}
	return 0
}

// Nodes returns every node in insertion order. The slice is a copy.
func (g *Graph[N]) Nodes() []N {
	return append([]N(nil), g.order...)
}

// Clone returns a deep copy: neighbor sets are duplicated, labels are shared.
// Complexity: O(V + E)
func (g *Graph[N]) Clone() *Graph[N] {
	out := &Graph[N]{
		directed: g.directed,
		adj:      make(map[N]mapset.Set[N], len(g.adj)),
		index:    maps.Clone(g.index),
		order:    append([]N(nil), g.order...),
	}
	for n, s := range g.adj {
		c := mapset.New[N]()
		s.Each(func(m N) { c.Put(m) })
		out.adj[n] = c
	}
	return out
}
