package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/districtroute/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPairs_CountAndConsistency(t *testing.T) {
	g := districts(t)
	n := len(districtNames)

	for _, workers := range []int{1, 3, 0} {
		all, err := dijkstra.AllPairs(context.Background(), g, dijkstra.WithWorkers(workers))
		require.NoError(t, err)
		require.Len(t, all, n*(n-1), "workers=%d", workers)

		for pair, res := range all {
			require.NotEqual(t, pair.Source, pair.Target)
			single, err := dijkstra.ShortestPath(g, pair.Source, pair.Target)
			require.NoError(t, err)
			assert.Equal(t, single, res, "%s→%s", pair.Source, pair.Target)
		}
	}
}

func TestAllPairs_IncludesUnreachable(t *testing.T) {
	g := districts(t)
	require.NoError(t, g.AddVertex("Likoma"))
	n := len(districtNames) + 1

	all, err := dijkstra.AllPairs(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, all, n*(n-1))

	res, ok := all[dijkstra.Pair{Source: "Likoma", Target: "Dedza"}]
	require.True(t, ok)
	assert.False(t, res.Reachable())
	assert.True(t, math.IsInf(res.Weight, 1))
}

func TestAllPairs_SmallGraphs(t *testing.T) {
	empty := buildGraph(t, nil, nil)
	all, err := dijkstra.AllPairs(context.Background(), empty)
	require.NoError(t, err)
	assert.Empty(t, all)

	single := buildGraph(t, []string{"Dowa"}, nil)
	all, err = dijkstra.AllPairs(context.Background(), single)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAllPairs_Errors(t *testing.T) {
	_, err := dijkstra.AllPairs(context.Background(), nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.AllPairs(context.Background(), districts(t), dijkstra.WithMaxDistance(-5))
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.AllPairs(ctx, districts(t))
	require.ErrorIs(t, err, context.Canceled)
}
