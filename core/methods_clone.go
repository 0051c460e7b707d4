// File: methods_clone.go
// Role: Deep copy of a graph instance.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph, preserving insertion order.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[string]map[string]float64, len(g.adjacency)),
		order:     make([]string, len(g.order)),
		edgeCount: g.edgeCount,
	}
	copy(clone.order, g.order)
	var id, nb string
	var row map[string]float64
	var w float64
	for id, row = range g.adjacency {
		cp := make(map[string]float64, len(row))
		for nb, w = range row {
			cp[nb] = w
		}
		clone.adjacency[id] = cp
	}

	return clone
}
