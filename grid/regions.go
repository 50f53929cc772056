package grid

// Regions finds all orthogonally connected areas of equal-valued cells.
// Each region is a slice of positions in discovery (BFS) order; regions are
// returned in row-major order of their first cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func Regions[T comparable](g Grid[T]) [][]Position {
	h, w := g.Height(), g.Width()
	seen := make([]bool, h*w)
	var regions [][]Position

	for x := 0; x < h; x++ {
		for y := 0; y < w; y++ {
			if seen[x*w+y] {
				continue
			}
			start := Position{X: x, Y: y}
			value := g[x][y]
			// BFS to collect region
			queue := []Position{start}
			seen[x*w+y] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range CardinalDirections {
					v, cell, ok := NeighborInGrid(u, d, g)
					if !ok || cell != value || seen[v.X*w+v.Y] {
						continue
					}
					seen[v.X*w+v.Y] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// Perimeter counts the cell edges of region that border a cell outside it
// (including the grid border).
func Perimeter(region []Position) int {
	in := make(map[Position]struct{}, len(region))
	for _, p := range region {
		in[p] = struct{}{}
	}
	n := 0
	for _, p := range region {
		for _, d := range CardinalDirections {
			if _, ok := in[p.Neighbor(d)]; !ok {
				n++
			}
		}
	}
	return n
}

// corners pairs each diagonal with the two orthogonal directions around it.
var corners = [4][3]Direction{
	{North, East, NorthEast},
	{East, South, SouthEast},
	{South, West, SouthWest},
	{West, North, NorthWest},
}

// Sides counts the straight fence sides around region, which equals the
// number of its corners. A cell contributes an outer corner where both
// orthogonal neighbors of a quadrant are outside the region, and an inner
// corner where both are inside but the diagonal between them is not.
//
// Time: O(len(region)).
func Sides(region []Position) int {
	in := make(map[Position]struct{}, len(region))
	for _, p := range region {
		in[p] = struct{}{}
	}
	has := func(p Position) bool {
		_, ok := in[p]
		return ok
	}
	n := 0
	for _, p := range region {
		for _, c := range corners {
			a, b := has(p.Neighbor(c[0])), has(p.Neighbor(c[1]))
			switch {
			case !a && !b:
				n++
			case a && b && !has(p.Neighbor(c[2])):
				n++
			}
		}
	}
	return n
}
