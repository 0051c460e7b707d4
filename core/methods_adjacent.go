// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Range).
// Determinism:
//   - NeighborIDs() returns labels sorted lex asc.
//   - Range() visits neighbors in the same sorted order.
// Concurrency:
//   - Read lock only; returned maps/slices are copies.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns a copy of the adjacency row of id: neighbor label → weight.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d) time and space.
func (g *Graph) Neighbors(id string) (map[string]float64, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make(map[string]float64, len(row))
	var nb string
	var w float64
	for nb, w = range row {
		out[nb] = w
	}

	return out, nil
}

// NeighborIDs returns the labels adjacent to id, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(row), nil
}

// Range calls fn for every neighbor of id in ascending label order, stopping
// early when fn returns false. It avoids the map copy made by Neighbors and is
// what the shortest-path engine uses on its hot path.
//
// fn runs under the graph's read lock and must not call mutating methods.
func (g *Graph) Range(id string, fn func(neighbor string, w float64) bool) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	for _, nb := range sortedKeys(row) {
		if !fn(nb, row[nb]) {
			break
		}
	}

	return nil
}

func sortedKeys(row map[string]float64) []string {
	ids := make([]string, 0, len(row))
	for nb := range row {
		ids = append(ids, nb)
	}
	sort.Strings(ids)

	return ids
}
