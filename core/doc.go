// Package core provides the in-memory, thread-safe WeightedGraph used by every
// other package of districtroute.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are identified by a unique, non-empty string label.
//   - Edges carry a finite, non-negative float64 weight (road length, travel cost).
//   - Adjacency is a nested map: adjacency[a][b] = w, mirrored as adjacency[b][a] = w.
//   - A single sync.RWMutex guards the maps; queries take the read lock.
//
// Why a nested map?
//
//   - Neighbors reference each other by label (a map key), never by pointer,
//     so there are no reference cycles to manage.
//   - Membership, insertion and weight lookups are O(1).
//   - Iteration surfaces (Vertices, NeighborIDs, Edges) are sorted, so every
//     algorithm built on top of core is deterministic.
//
// API overview:
//
//	// Construction
//	NewGraph() *Graph
//	AddVertex(id string) error                  // O(1), ErrDuplicateVertex on re-insert
//	AddEdge(a, b string, w float64) error       // O(1), endpoints must already exist
//
//	// Query
//	HasVertex(id string) bool                   // O(1)
//	HasEdge(a, b string) bool                   // O(1)
//	Weight(a, b string) (float64, bool)         // O(1)
//	Neighbors(id string) (map[string]float64, error) // O(d), copy of the adjacency row
//	NeighborIDs(id string) ([]string, error)    // O(d·log d), sorted
//	Degree(id string) (int, error)              // O(1)
//	Vertices() []string                         // O(V·log V), sorted
//	InsertionOrder() []string                   // O(V), order of AddVertex calls
//	Edges() []Edge                              // O(E·log E), each edge once, From < To
//	VertexCount() int                           // O(1)
//	EdgeCount() int                             // O(1)
//	Stats() GraphStats                          // O(V+E)
//	String() string                             // adjacency dump, one line per vertex
//
//	// Cloning
//	Clone() *Graph                              // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex label
//	ErrVertexNotFound  – label not present (UnknownNode)
//	ErrDuplicateVertex – AddVertex on an existing label (DuplicateNode)
//	ErrBadWeight       – negative, NaN or infinite weight (InvalidWeight)
//	ErrLoopNotAllowed  – edge from a vertex to itself
//
// Every failing mutation leaves the graph exactly as it was.
//
// Concurrency:
//
//	Concurrent readers are always safe. Mutating a graph while shortest-path
//	queries are running against it is a caller error: the lock keeps the maps
//	consistent but a query may observe a half-built topology.
package core
