// Package dijkstra implements single-source shortest paths with a lazy
// decrease-key min-heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each strict improvement pushes one heap entry (≤ E pushes).
//   - Space: O(V + E) for dist/prev maps and the heap.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/districtroute/core"
)

// Tree is the shortest-path tree rooted at Source produced by Run.
// It is private to the caller; the engine keeps no reference to it.
type Tree struct {
	Source string
	dist   map[string]float64 // finalized distances (reachable vertices only)
	prev   map[string]string  // predecessor on the chosen shortest path
}

// Run computes shortest distances from source to every reachable vertex of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound).
func Run(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	r := newRunner(g, source, cfg)
	if err = r.process(); err != nil {
		return nil, err
	}

	return &Tree{Source: source, dist: r.dist, prev: r.prev}, nil
}

// Distance returns the shortest distance to target and whether it is reachable.
func (t *Tree) Distance(target string) (float64, bool) {
	d, ok := t.dist[target]
	if !ok {
		return Inf, false
	}

	return d, true
}

// Distances returns a copy of all finalized distances; unreachable vertices are absent.
func (t *Tree) Distances() map[string]float64 {
	out := make(map[string]float64, len(t.dist))
	for v, d := range t.dist {
		out[v] = d
	}

	return out
}

// PathTo reconstructs the path from Source to target by walking predecessors
// back from target and reversing.
func (t *Tree) PathTo(target string) PathResult {
	res := PathResult{Source: t.Source, Target: target, Weight: Inf}
	d, ok := t.dist[target]
	if !ok {
		return res
	}

	path := []string{target}
	for cur := target; cur != t.Source; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path
	res.Weight = d

	return res
}

// ShortestPath returns the minimum-weight path from source to target.
// An unreachable target is reported through PathResult, not as an error.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (PathResult, error) {
	if g == nil {
		return PathResult{}, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return PathResult{}, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return PathResult{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	tree, err := Run(g, source, opts...)
	if err != nil {
		return PathResult{}, err
	}

	return tree.PathTo(target), nil
}

// Distances returns the shortest distance from source to every reachable vertex.
// Unreachable vertices are omitted.
func Distances(g *core.Graph, source string, opts ...Option) (map[string]float64, error) {
	tree, err := Run(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return tree.dist, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph        // read-only input
	options Options            // configuration
	dist    map[string]float64 // best known, final once visited
	prev    map[string]string  // predecessor of each reached vertex
	visited map[string]bool    // finalized vertices
	pq      nodePQ             // lazy min-heap
}

func newRunner(g *core.Graph, source string, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly finalizes the closest unvisited vertex and relaxes its edges.
// relax never stores a distance beyond MaxDistance, so every entry of dist is
// finalized by the time the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each neighbor v of u and records a strictly shorter distance.
// A sum that overflows to +Inf is not a distance; v stays unreached through u.
func (r *runner) relax(u string, du float64) error {
	err := r.g.Range(u, func(v string, w float64) bool {
		if r.visited[v] {
			return true
		}
		nd := du + w
		if math.IsInf(nd, 1) || nd > r.options.MaxDistance {
			return true
		}
		if cur, seen := r.dist[v]; seen && nd >= cur {
			return true
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	return nil
}

// nodeItem is a frontier entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap ordered by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then label, so equal-distance vertices are
// finalized in lexicographic order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
