package graph_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/graph"
)

// CliqueSuite exercises triangle and clique enumeration.
type CliqueSuite struct {
	suite.Suite
}

func build(edges ...string) *graph.Graph[string] {
	g := graph.New[string]()
	for _, e := range edges {
		a, b, _ := strings.Cut(e, "-")
		g.AddEdge(a, b)
	}
	return g
}

// TestTriangles_K4 checks that K4 has exactly four triangles, each reported once.
func (s *CliqueSuite) TestTriangles_K4() {
	g := build("a-b", "a-c", "a-d", "b-c", "b-d", "c-d")
	tris := graph.Triangles(g, nil)
	require.Len(s.T(), tris, 4)
	assert.Equal(s.T(), [3]string{"a", "b", "c"}, tris[0])
	assert.Equal(s.T(), [3]string{"b", "c", "d"}, tris[3])
}

// TestTriangles_Filter keeps only triangles containing a node starting with "t".
func (s *CliqueSuite) TestTriangles_Filter() {
	g := build("ta-b", "b-c", "c-ta", "c-d", "d-b")
	hasT := func(a, b, c string) bool {
		return strings.HasPrefix(a, "t") || strings.HasPrefix(b, "t") || strings.HasPrefix(c, "t")
	}
	assert.Len(s.T(), graph.Triangles(g, nil), 2)
	assert.Len(s.T(), graph.Triangles(g, hasT), 1)
}

// TestMaximalCliques_TwoTriangles finds both maximal cliques sharing an edge.
func (s *CliqueSuite) TestMaximalCliques_TwoTriangles() {
	g := build("a-b", "b-c", "c-a", "b-d", "c-d", "d-e")
	cliques := graph.MaximalCliques(g)

	got := make([]string, 0, len(cliques))
	for _, c := range cliques {
		got = append(got, strings.Join(c, ","))
	}
	sort.Strings(got)
	assert.Equal(s.T(), []string{"a,b,c", "b,c,d", "d,e"}, got)
}

// TestMaximumClique picks the K4 hidden in a sparse graph.
func (s *CliqueSuite) TestMaximumClique() {
	g := build("p-q", "q-r", "r-s", "s-p", "p-r", "q-s", "s-t", "t-u")
	best := graph.MaximumClique(g)
	assert.Equal(s.T(), []string{"p", "q", "r", "s"}, best)

	assert.Nil(s.T(), graph.MaximumClique(graph.New[string]()))
}

// TestIsolatedNode is its own maximal clique.
func (s *CliqueSuite) TestIsolatedNode() {
	g := graph.New[int]()
	g.AddNode(42)
	assert.Equal(s.T(), [][]int{{42}}, graph.MaximalCliques(g))
	assert.Empty(s.T(), graph.Triangles(g, nil))
}

// TestSelfLoop does not hide the cliques a looped node belongs to.
func (s *CliqueSuite) TestSelfLoop() {
	g := build("a-a", "a-b")
	assert.Equal(s.T(), [][]string{{"a", "b"}}, graph.MaximalCliques(g))
	assert.Equal(s.T(), []string{"a", "b"}, graph.MaximumClique(g))

	lone := build("z-z")
	assert.Equal(s.T(), [][]string{{"z"}}, graph.MaximalCliques(lone))
}

func TestCliqueSuite(t *testing.T) {
	suite.Run(t, new(CliqueSuite))
}
