// Package dijkstra defines result types and configuration options for the
// shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/districtroute/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	// It wraps core.ErrVertexNotFound so either sentinel matches with errors.Is.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Inf is the weight reported for unreachable targets.
var Inf = math.Inf(1)

// PathResult is the outcome of one source→target query.
//
// Path is nil when Target is unreachable; Weight is then Inf.
type PathResult struct {
	Source string   // query source
	Target string   // query target
	Path   []string // Source … Target inclusive, nil if unreachable
	Weight float64  // sum of edge weights along Path, Inf if unreachable
}

// Reachable reports whether a path to Target exists.
func (r PathResult) Reachable() bool { return r.Path != nil }

// Hops returns the number of edges on the path, or -1 if unreachable.
func (r PathResult) Hops() int {
	if r.Path == nil {
		return -1
	}

	return len(r.Path) - 1
}

// Pair keys AllPairs results by ordered (source, target).
type Pair struct {
	Source string
	Target string
}

// Options configures the engine.
//
// MaxDistance – vertices whose distance would exceed it are treated as unreachable.
//
//	Default is +Inf (no cap).
//
// Workers     – AllPairs concurrency. Default runtime.GOMAXPROCS(0).
type Options struct {
	MaxDistance float64
	Workers     int

	err error // recorded option violation, surfaced by the entry points
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithMaxDistance caps exploration at d.
// Negative or NaN values are recorded and surfaced as ErrBadMaxDistance.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithWorkers bounds the number of single-source runs AllPairs executes at once.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// DefaultOptions returns the defaults used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		MaxDistance: Inf,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
