// File: api.go
// Role: Read-only summary surfaces: Stats and String.
// Policy:
//   - No algorithms or hidden state here.

package core

import (
	"strconv"
	"strings"
)

// Stats produces a deterministic snapshot of vertex/edge counts and total weight.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	var from, to string
	var row map[string]float64
	var w float64
	for from, row = range g.adjacency {
		if len(row) == 0 {
			stats.IsolatedCount++
		}
		for to, w = range row {
			if from < to { // count each undirected edge once
				stats.TotalWeight += w
			}
		}
	}

	return stats
}

// String renders the adjacency structure, one vertex per line in insertion
// order, neighbors sorted by label:
//
//	Mchinji -> Kasungu(141), Lilongwe(109)
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for _, id := range g.order {
		row := g.adjacency[id]
		sb.WriteString(id)
		sb.WriteString(" ->")
		for i, nb := range sortedKeys(row) {
			if i == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(", ")
			}
			sb.WriteString(nb)
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatFloat(row[nb], 'g', -1, 64))
			sb.WriteByte(')')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
