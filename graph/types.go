package graph

import (
	"github.com/zyedidia/generic/mapset"
)

// Option configures a Graph before creation.
type Option func(*options)

type options struct {
	directed bool
}

// WithDirected makes AddEdge(a, b) record only the a → b direction.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}

// Graph is an adjacency-set graph over comparable node labels.
//
// adj holds the neighbor set of every node ever added; index remembers the
// insertion rank of each node so results can be ordered deterministically.
type Graph[N comparable] struct {
	directed bool
	adj      map[N]mapset.Set[N]
	index    map[N]int
	order    []N
}

// New creates an empty Graph. By default, the graph is undirected.
// Complexity: O(1)
func New[N comparable](opts ...Option) *Graph[N] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N]{
		directed: o.directed,
		adj:      make(map[N]mapset.Set[N]),
		index:    make(map[N]int),
	}
}
