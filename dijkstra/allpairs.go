package dijkstra

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/districtroute/core"
)

// AllPairs returns the shortest path for every ordered pair of distinct
// vertices: exactly V×(V−1) entries, unreachable pairs included with Inf weight.
//
// One single-source Run per vertex is executed, at most Options.Workers at a
// time. Each run allocates its own dist/prev/heap, so runs share nothing but
// the read-only graph. Cancelling ctx stops scheduling new sources and
// returns ctx.Err().
//
// Complexity: O(V·(V+E) log V) time, O(V²) space for the result.
func AllPairs(ctx context.Context, g *core.Graph, opts ...Option) (map[Pair]PathResult, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	out := make(map[Pair]PathResult, n*(n-1))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for _, src := range vertices {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			tree, err := Run(g, src, opts...)
			if err != nil {
				return err
			}
			rows := make([]PathResult, 0, n-1)
			for _, dst := range vertices {
				if dst != src {
					rows = append(rows, tree.PathTo(dst))
				}
			}

			mu.Lock()
			for _, r := range rows {
				out[Pair{Source: r.Source, Target: r.Target}] = r
			}
			mu.Unlock()

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
