package graph

import "sort"

// Triangles returns every set of three mutually adjacent nodes exactly once.
// Each triangle is ordered by node insertion rank, and the list is ordered
// lexicographically by those ranks. keep, if non-nil, filters triangles.
//
// Intended for undirected graphs; on a directed graph an edge counts only
// when it exists in the direction the scan checks (lower rank → higher).
//
// Complexity: O(Σ deg(v)²) time.
func Triangles[N comparable](g *Graph[N], keep func(a, b, c N) bool) [][3]N {
	var out [][3]N
	for _, u := range g.order {
		ru := g.index[u]
		// Only neighbors ranked after u, so each triangle is seen from its lowest node.
		var later []N
		for _, v := range g.NeighborList(u) {
			if g.index[v] > ru {
				later = append(later, v)
			}
		}
		for i := 0; i < len(later); i++ {
			for j := i + 1; j < len(later); j++ {
				v, w := later[i], later[j]
				if !g.HasEdge(v, w) {
					continue
				}
				if keep != nil && !keep(u, v, w) {
					continue
				}
				out = append(out, [3]N{u, v, w})
			}
		}
	}
	return out
}

// MaximalCliques enumerates every maximal clique with the Bron–Kerbosch
// algorithm using Tomita pivoting. Each clique is ordered by node insertion
// rank. Only meaningful for undirected graphs. Self-loops are ignored.
//
// Complexity: O(3^(V/3)) worst case.
func MaximalCliques[N comparable](g *Graph[N]) [][]N {
	bk := &bronKerbosch[N]{g: g}
	p := make(map[N]struct{}, len(g.order))
	for _, n := range g.order {
		p[n] = struct{}{}
	}
	bk.run(map[N]struct{}{}, p, map[N]struct{}{})
	return bk.cliques
}

// MaximumClique returns the largest maximal clique (the first one found on
// ties), or nil for an empty graph.
func MaximumClique[N comparable](g *Graph[N]) []N {
	var best []N
	for _, c := range MaximalCliques(g) {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}

// bronKerbosch holds the output and graph for a single enumeration.
type bronKerbosch[N comparable] struct {
	g       *Graph[N]
	cliques [][]N
}

func (bk *bronKerbosch[N]) run(r, p, x map[N]struct{}) {
	if len(p) == 0 {
		if len(x) == 0 {
			clique := make([]N, 0, len(r))
			for n := range r {
				clique = append(clique, n)
			}
			bk.g.sortByIndex(clique)
			bk.cliques = append(bk.cliques, clique)
		}
		return
	}

	pivot := bk.pivot(p, x)
	pivotNbrs, _ := bk.g.Neighbors(pivot)

	candidates := make([]N, 0, len(p))
	for n := range p {
		if n == pivot || !pivotNbrs.Has(n) {
			candidates = append(candidates, n)
		}
	}
	bk.g.sortByIndex(candidates)

	for _, v := range candidates {
		nbrs, _ := bk.g.Neighbors(v)
		p2 := make(map[N]struct{})
		for n := range p {
			if n != v && nbrs.Has(n) {
				p2[n] = struct{}{}
			}
		}
		x2 := make(map[N]struct{})
		for n := range x {
			if n != v && nbrs.Has(n) {
				x2[n] = struct{}{}
			}
		}
		r[v] = struct{}{}
		bk.run(r, p2, x2)
		delete(r, v)
		delete(p, v)
		x[v] = struct{}{}
	}
}

// pivot picks the node of P ∪ X with the most neighbors in P; ties go to the
// lowest insertion rank.
func (bk *bronKerbosch[N]) pivot(p, x map[N]struct{}) N {
	pool := make([]N, 0, len(p)+len(x))
	for n := range p {
		pool = append(pool, n)
	}
	for n := range x {
		pool = append(pool, n)
	}
	bk.g.sortByIndex(pool)

	best, bestCount := pool[0], -1
	for _, u := range pool {
		nbrs, _ := bk.g.Neighbors(u)
		count := 0
		for n := range p {
			if n != u && nbrs.Has(n) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = u, count
		}
	}
	return best
}

// sortByIndex orders nodes by insertion rank.
func (g *Graph[N]) sortByIndex(ns []N) {
	sort.Slice(ns, func(i, j int) bool { return g.index[ns[i]] < g.index[ns[j]] })
}
