// File: types.go
// Role: Graph, Edge, GraphStats declarations, sentinel errors and the constructor.
// Determinism:
//   - insertion order of vertices is recorded in g.order for String()/InsertionOrder().
// Concurrency:
//   - g.mu guards adjacency, order and edgeCount.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called for a label already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a read-only snapshot of one undirected edge.
//
// Edges() reports each edge once with From < To (lexicographically).
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int     // number of vertices
	EdgeCount     int     // number of undirected edges
	IsolatedCount int     // vertices with no incident edge
	TotalWeight   float64 // sum of all edge weights (each edge counted once)
}

// Graph is an undirected weighted graph keyed by vertex label.
//
// adjacency[a][b] == adjacency[b][a] == w for every edge {a,b}.
// Every vertex owns a (possibly empty) row in adjacency.
type Graph struct {
	mu sync.RWMutex // guards everything below

	adjacency map[string]map[string]float64 // label → neighbor → weight
	order     []string                      // labels in AddVertex order
	edgeCount int                           // number of undirected edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]float64),
	}
}
