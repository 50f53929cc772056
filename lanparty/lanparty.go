package lanparty

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/graph"
)

// ErrBadLine is returned for a line that is not "a-b" with two non-empty,
// distinct names.
var ErrBadLine = errors.New("lanparty: malformed connection")

// Parse builds an undirected graph from one "a-b" connection per line.
// Blank lines are skipped.
func Parse(input string) (*graph.Graph[string], error) {
	g := graph.New[string]()
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" || a == b {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadLine, i+1, line)
		}
		g.AddEdge(a, b)
	}
	return g, nil
}

// CountTriangles counts triangles with at least one member starting with
// prefix. An empty prefix counts every triangle.
func CountTriangles(g *graph.Graph[string], prefix string) int {
	has := func(n string) bool { return strings.HasPrefix(n, prefix) }
	return len(graph.Triangles(g, func(a, b, c string) bool {
		return has(a) || has(b) || has(c)
	}))
}

// Password returns the largest clique's names in sorted order, comma-joined.
// An empty graph yields "".
func Password(g *graph.Graph[string]) string {
	clique := graph.MaximumClique(g)
	names := append([]string(nil), clique...)
	sort.Strings(names)
	return strings.Join(names, ",")
}
