// Package bfs provides breadth-first traversal over a core.Graph, ignoring
// edge weights: it answers "how many roads away" and "which districts can
// reach each other at all".
//
// BFS explores vertices in increasing hop count from a start vertex, with an
// optional context, depth limit and visit hook. Neighbors are expanded in
// ascending label order, so Order, Depth and Parent are deterministic.
//
// Components partitions the vertex set into connected components. Two
// vertices in different components are exactly the pairs for which
// dijkstra.ShortestPath reports an unreachable result.
//
// Complexity:
//
//   - BFS:        O(V + E) time, O(V) space.
//   - Components: O(V + E) time, O(V) space.
//
// Errors:
//
//   - ErrGraphNil:            graph pointer is nil.
//   - ErrStartVertexNotFound: start is absent from the graph.
//   - ErrOptionViolation:     an invalid Option (e.g. negative depth).
//   - ErrNeighbors:           neighbor lookup failed mid-walk.
package bfs
