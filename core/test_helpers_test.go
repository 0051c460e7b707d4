package core_test

import (
	"testing"

	"github.com/katalvlaran/districtroute/core"
	"github.com/stretchr/testify/require"
)

// newGraphWith builds a graph with the given vertices and edges, failing the
// test on the first error.
func newGraphWith(t testing.TB, vertices []string, edges []core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v), "AddVertex(%q)", v)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight), "AddEdge(%s,%s)", e.From, e.To)
	}

	return g
}

// square returns A—B(1), B—D(2), A—C(4), C—D(1).
func square(t testing.TB) *core.Graph {
	return newGraphWith(t,
		[]string{"A", "B", "C", "D"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "D", Weight: 2},
			{From: "A", To: "C", Weight: 4},
			{From: "C", To: "D", Weight: 1},
		})
}
