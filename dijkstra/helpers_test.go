package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/districtroute/core"
	"github.com/stretchr/testify/require"
)

// districtNames lists the central-region districts in dataset order.
var districtNames = []string{
	"Mchinji", "Kasungu", "Lilongwe", "Dowa", "Ntchisi",
	"Nkhotakota", "Salima", "Dedza", "Ntcheu",
}

// districtRoads lists the road lengths (km) between adjacent districts.
var districtRoads = []core.Edge{
	{From: "Mchinji", To: "Kasungu", Weight: 141},
	{From: "Mchinji", To: "Lilongwe", Weight: 109},
	{From: "Kasungu", To: "Ntchisi", Weight: 66},
	{From: "Kasungu", To: "Dowa", Weight: 117},
	{From: "Lilongwe", To: "Dowa", Weight: 55},
	{From: "Lilongwe", To: "Dedza", Weight: 92},
	{From: "Dowa", To: "Ntchisi", Weight: 38},
	{From: "Dowa", To: "Salima", Weight: 67},
	{From: "Ntchisi", To: "Nkhotakota", Weight: 66},
	{From: "Nkhotakota", To: "Salima", Weight: 112},
	{From: "Salima", To: "Dedza", Weight: 96},
	{From: "Dedza", To: "Ntcheu", Weight: 74},
}

func buildGraph(t testing.TB, vertices []string, edges []core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func districts(t testing.TB) *core.Graph {
	return buildGraph(t, districtNames, districtRoads)
}
