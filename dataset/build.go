package dataset

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/districtroute/bfs"
	"github.com/katalvlaran/districtroute/core"
)

// Build validates d and inserts its nodes and then its edges, in order, into
// a new core.Graph.
//
// Every failing entry (duplicate node, unknown endpoint, bad weight) is
// collected; if any fails, Build returns a nil graph and a *multierror.Error
// whose wrapped errors match the core sentinels with errors.Is.
func Build(d *Dataset) (*core.Graph, error) {
	return BuildWithLogger(d, nil)
}

// BuildWithLogger is Build with diagnostics. A nil logger discards them.
// A successfully built but disconnected network is logged as a warning, since
// every cross-component query will come back unreachable.
func BuildWithLogger(d *Dataset, logger *slog.Logger) (*core.Graph, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if d == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrInvalidDataset)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	var merr *multierror.Error
	for i, n := range d.Nodes {
		if err := g.AddVertex(n); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("node %d: %w", i, err))
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("edge %d (%s-%s): %w", i, e.From, e.To, err))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		logger.Error("dataset rejected", "dataset", d.Name, "problems", len(merr.Errors))
		return nil, err
	}

	stats := g.Stats()
	logger.Debug("dataset built",
		"dataset", d.Name,
		"vertices", stats.VertexCount,
		"edges", stats.EdgeCount,
		"total_weight", stats.TotalWeight)
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		logger.Warn("dataset is disconnected",
			"dataset", d.Name,
			"components", len(comps),
			"isolated", stats.IsolatedCount)
	}

	return g, nil
}

// FromGraph captures g as a Dataset: nodes in insertion order, edges in
// core.Graph.Edges order.
func FromGraph(g *core.Graph, name string) *Dataset {
	ds := &Dataset{Name: name, Nodes: g.InsertionOrder()}
	for _, e := range g.Edges() {
		ds.Edges = append(ds.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return ds
}
