package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/districtroute/core"
)

// Components partitions g into connected components.
// Each component is sorted by label; components are ordered by their smallest
// label. A nil graph yields ErrGraphNil. A failing walk is returned as is, so
// no vertex silently drops out of the partition.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, v := range g.Vertices() { // sorted, so components come out ordered by min label
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, fmt.Errorf("bfs: component of %q: %w", v, err)
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

// Connected reports whether every vertex of g can reach every other.
// Empty and single-vertex graphs are connected.
func Connected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
