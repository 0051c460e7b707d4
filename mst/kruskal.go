// Package mst computes the minimum spanning tree of a district network: the
// cheapest set of roads that still connects every district. It complements
// the shortest-path engine by answering "which roads form the backbone".
package mst

import (
	"errors"
	"sort"

	"github.com/katalvlaran/districtroute/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| == 0, or when
// |V| > 1 and some vertex is unreachable.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Kruskal computes the Minimum Spanning Tree of g using a disjoint-set
// (union-find) with path compression and union by rank.
//
// Steps:
//  1. Validate g != nil; |V| == 0 → ErrDisconnected; |V| == 1 → empty tree.
//  2. Collect edges (sorted by (From, To)) and stable-sort them by weight,
//     so equal weights resolve by endpoint labels.
//  3. Scan edges, adding each one whose endpoints lie in different sets.
//  4. Stop at |V|-1 edges; fewer than that means ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	vertices := g.Vertices()
	switch len(vertices) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []core.Edge{}, 0, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(ru, rv string) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	var (
		tree  = make([]core.Edge, 0, len(vertices)-1)
		total float64
	)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
