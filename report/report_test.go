package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districtroute/core"
	"github.com/katalvlaran/districtroute/dijkstra"
	"github.com/katalvlaran/districtroute/report"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"Lilongwe", "Dowa", "Likoma"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("Lilongwe", "Dowa", 55))

	return g
}

func TestOrderedPairs(t *testing.T) {
	pairs := report.OrderedPairs([]string{"B", "A", "C"})
	require.Len(t, pairs, 6)
	assert.Equal(t, []dijkstra.Pair{
		{Source: "B", Target: "A"}, {Source: "B", Target: "C"},
		{Source: "A", Target: "B"}, {Source: "A", Target: "C"},
		{Source: "C", Target: "B"}, {Source: "C", Target: "A"},
	}, pairs)
	assert.Empty(t, report.OrderedPairs(nil))
}

func TestText(t *testing.T) {
	g := sample(t)
	all, err := dijkstra.AllPairs(context.Background(), g)
	require.NoError(t, err)

	results := report.Collect(all, report.OrderedPairs([]string{"Lilongwe", "Dowa", "Likoma"})[:2])
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, results))
	assert.Equal(t,
		"Shortest path from Lilongwe to Dowa: [Lilongwe, Dowa]\n"+
			"Shortest path length: 55\n"+
			"No path found from Lilongwe to Likoma.\n",
		buf.String())
}

func TestJSON(t *testing.T) {
	g := sample(t)
	reach, err := dijkstra.ShortestPath(g, "Dowa", "Lilongwe")
	require.NoError(t, err)
	miss, err := dijkstra.ShortestPath(g, "Dowa", "Likoma")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, []dijkstra.PathResult{reach, miss}))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 55.0, decoded[0]["weight"])
	assert.Equal(t, true, decoded[0]["reachable"])
	assert.Equal(t, 1.0, decoded[0]["hops"])
	assert.Nil(t, decoded[1]["weight"])
	assert.Equal(t, []interface{}{}, decoded[1]["path"])
	assert.Equal(t, false, decoded[1]["reachable"])
}

func TestDistances(t *testing.T) {
	g := sample(t)
	dist, err := dijkstra.Distances(g, "Dowa")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Distances(&buf, "Dowa", dist, g.Vertices()))
	assert.Equal(t,
		"Distances from Dowa:\n  Dowa: 0\n  Likoma: unreachable\n  Lilongwe: 55\n",
		buf.String())
}

func TestAdjacencyAndComponents(t *testing.T) {
	g := sample(t)

	var buf bytes.Buffer
	require.NoError(t, report.Adjacency(&buf, g))
	assert.Equal(t,
		"Lilongwe -> Dowa(55)\nDowa -> Lilongwe(55)\nLikoma ->\n3 vertices, 1 edges, total weight 55\n",
		buf.String())

	buf.Reset()
	require.NoError(t, report.Components(&buf, [][]string{{"Dowa", "Lilongwe"}, {"Likoma"}}))
	assert.Equal(t, "1: [Dowa, Lilongwe]\n2: [Likoma]\n", buf.String())
}

func TestBackbone(t *testing.T) {
	var buf bytes.Buffer
	edges := []core.Edge{{From: "Dowa", To: "Ntchisi", Weight: 38}, {From: "Dowa", To: "Lilongwe", Weight: 55}}
	require.NoError(t, report.Backbone(&buf, edges, 93))
	assert.Equal(t, "Dowa - Ntchisi: 38\nDowa - Lilongwe: 55\nBackbone length: 93\n", buf.String())
}
