package dijkstra_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/districtroute/core"
	"github.com/katalvlaran/districtroute/dijkstra"
	"github.com/stretchr/testify/require"
)

// floydWarshall returns the all-pairs distance matrix of g, indexed by the
// positions of labels. Unreachable entries stay +Inf.
func floydWarshall(g *core.Graph, labels []string) [][]float64 {
	n := len(labels)
	idx := make(map[string]int, n)
	for i, v := range labels {
		idx[v] = i
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		dist[i][j] = e.Weight
		dist[j][i] = e.Weight
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if alt := dist[i][k] + dist[k][j]; alt < dist[i][j] {
					dist[i][j] = alt
				}
			}
		}
	}

	return dist
}

// randomGraph builds a sparse graph with integer weights so sums stay exact.
func randomGraph(t testing.TB, seed int64, n, m int) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i)))
	}
	for k := 0; k < m; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		w := float64(rng.Intn(50))
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%02d", a), fmt.Sprintf("v%02d", b), w))
	}

	return g
}

func TestAllPairs_MatchesFloydWarshall(t *testing.T) {
	graphs := map[string]*core.Graph{"districts": districts(t)}
	for seed := int64(1); seed <= 5; seed++ {
		graphs[fmt.Sprintf("random-%d", seed)] = randomGraph(t, seed, 20, 30)
	}

	for name, g := range graphs {
		g := g
		t.Run(name, func(t *testing.T) {
			labels := g.Vertices()
			want := floydWarshall(g, labels)

			all, err := dijkstra.AllPairs(context.Background(), g, dijkstra.WithWorkers(4))
			require.NoError(t, err)

			for i, s := range labels {
				for j, d := range labels {
					if i == j {
						continue
					}
					got := all[dijkstra.Pair{Source: s, Target: d}]
					require.Equal(t, want[i][j], got.Weight, "%s→%s", s, d)
				}
			}
		})
	}
}
