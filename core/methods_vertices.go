// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns labels sorted lexicographically ascending.
//   - InsertionOrder() returns labels in AddVertex order.
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts an isolated vertex.
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject an existing label (ErrDuplicateVertex).
//   - Stage 3: Allocate an empty adjacency row and record insertion order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrDuplicateVertex: if id is already present. The graph is not modified.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.adjacency[id] = make(map[string]float64)
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether the vertex exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex labels in lexicographic ascending order.
// Complexity: O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	var id string
	for id = range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// InsertionOrder returns vertex labels in the order they were added.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) InsertionOrder() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(row), nil
}
