// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, From < To, sorted by (From, To).
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects a and b with an undirected edge of weight w.
//
// Steps:
//  1. Validate labels (ErrEmptyVertexID), loop (ErrLoopNotAllowed) and weight (ErrBadWeight).
//  2. Under the write lock, require both endpoints (ErrVertexNotFound).
//  3. Write adjacency[a][b] and its mirror adjacency[b][a].
//
// Re-adding an existing pair replaces its weight; EdgeCount is unchanged.
// On any error the graph is left untouched.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, w float64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %q-%q weight=%v", ErrBadWeight, a, b, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	rowA, okA := g.adjacency[a]
	if !okA {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	rowB, okB := g.adjacency[b]
	if !okB {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	if _, exists := rowA[b]; !exists {
		g.edgeCount++
	}
	rowA[b] = w
	rowB[a] = w

	return nil
}

// HasEdge reports whether a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Weight returns the weight of edge {a,b} and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[a][b]

	return w, ok
}

// Edges returns every undirected edge once, with From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var from, to string
	var row map[string]float64
	var w float64
	for from, row = range g.adjacency {
		for to, w = range row {
			if from < to {
				out = append(out, Edge{From: from, To: to, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
