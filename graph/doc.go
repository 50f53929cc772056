// Package graph provides a generic adjacency-set graph over any comparable
// node label, plus the small set of clique algorithms the puzzles need.
//
// What:
//
//   - Graph[N] maps each node to a mapset.Set of its neighbors.
//   - Undirected by default: AddEdge(a, b) makes each a neighbor of the
//     other. WithDirected() records only a → b.
//   - Adding an edge twice has no further effect.
//   - Triangles enumerates every 3-clique once; MaximalCliques runs
//     Bron–Kerbosch with pivoting; MaximumClique picks the largest.
//
// Guarantees:
//
//   - O(1) neighbor-set lookup, O(degree) iteration.
//   - Nodes() and every algorithm result follow node insertion order, so
//     output is reproducible even though sets are hash-based.
//
// Non-guarantees:
//
//   - No weights, no deletion, no self-loop rejection (caller's job).
//   - Not safe for concurrent mutation.
//
// Complexity:
//
//   - AddNode, AddEdge, HasNode, HasEdge, Neighbors: O(1) amortized.
//   - Triangles:      O(Σ deg(v)²).
//   - MaximalCliques: O(3^(V/3)) worst case.
package graph
