// Package dijkstra computes shortest paths over a core.Graph with Dijkstra's
// algorithm.
//
// Overview:
//
//   - Run computes a single-source shortest-path tree in O((V + E) log V).
//   - ShortestPath and Distances are thin views over one Run.
//   - AllPairs repeats Run once per source (no Floyd–Warshall) and fans the
//     sources out over a bounded worker pool; each run owns its scratch state.
//
// Results:
//
//   - PathResult carries the ordered labels from source to target (inclusive)
//     and the total weight of that path.
//   - Unreachability is a normal outcome, not an error: Path is nil and
//     Weight is +Inf (math.Inf(1)). Use PathResult.Reachable.
//   - A query from a vertex to itself yields a single-label path of weight 0.
//   - Distances omits unreachable vertices from the returned map.
//
// Tie-break:
//
//	The frontier is ordered by (distance, label). Among equally distant
//	vertices the lexicographically smaller label is finalized first, and a
//	predecessor is only replaced on a strictly shorter distance. Equal-cost
//	alternatives therefore always resolve the same way for the same graph.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrVertexNotFound:  source or target is absent (wraps core.ErrVertexNotFound).
//   - ErrBadMaxDistance:  WithMaxDistance received a negative or NaN value.
//
// Thread safety:
//
//	The engine never mutates the graph. Concurrent queries on the same graph
//	are safe. Mutating the graph while queries run is a caller error.
//
// API reference:
//
//	func Run(g *core.Graph, source string, opts ...Option) (*Tree, error)
//	func ShortestPath(g *core.Graph, source, target string, opts ...Option) (PathResult, error)
//	func Distances(g *core.Graph, source string, opts ...Option) (map[string]float64, error)
//	func AllPairs(ctx context.Context, g *core.Graph, opts ...Option) (map[Pair]PathResult, error)
package dijkstra
