package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/districtroute/bfs"
	"github.com/katalvlaran/districtroute/core"
	"github.com/katalvlaran/districtroute/dataset"
	"github.com/katalvlaran/districtroute/dijkstra"
	"github.com/katalvlaran/districtroute/internal/config"
	"github.com/katalvlaran/districtroute/internal/logging"
	"github.com/katalvlaran/districtroute/mst"
	"github.com/katalvlaran/districtroute/report"
)

// app carries state shared by every subcommand once PersistentPreRunE has run.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	flags      config.Config // flag values; applied only when the flag was set

	cfg         config.Config
	logger      *slog.Logger
	graph       *core.Graph
	datasetName string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "districtroute",
		Short: "Shortest road routes between districts",
		Long: "districtroute builds a weighted, undirected district road network and\n" +
			"answers shortest-path queries over it with Dijkstra's algorithm.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.flags.Dataset, "dataset", "", "path to a YAML dataset (default: built-in central region)")
	pf.StringVar(&a.flags.Output.Format, "format", "text", "output format: text|json")
	pf.IntVar(&a.flags.Engine.Workers, "workers", 0, "all-pairs worker count (0 = GOMAXPROCS)")
	pf.Float64Var(&a.flags.Engine.MaxDistance, "max-distance", 0, "ignore routes longer than this (0 = no cap)")
	pf.StringVar(&a.flags.Logging.Level, "log-level", "warn", "log level: debug|info|warn|error")
	pf.StringVar(&a.flags.Logging.Format, "log-format", "text", "log format: text|json")

	root.AddCommand(
		a.routeCmd(),
		a.distancesCmd(),
		a.allPairsCmd(),
		a.graphCmd(),
		a.componentsCmd(),
		a.backboneCmd(),
	)

	return root
}

// setup loads config, overlays explicitly set flags, builds the logger and the graph.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("dataset") {
		cfg.Dataset = a.flags.Dataset
	}
	if fs.Changed("format") {
		cfg.Output.Format = a.flags.Output.Format
	}
	if fs.Changed("workers") {
		cfg.Engine.Workers = a.flags.Engine.Workers
	}
	if fs.Changed("max-distance") {
		cfg.Engine.MaxDistance = a.flags.Engine.MaxDistance
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = a.flags.Logging.Level
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = a.flags.Logging.Format
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(a.errOut, cfg.Logging)

	ds := dataset.Default()
	if cfg.Dataset != "" {
		if ds, err = dataset.LoadFile(cfg.Dataset); err != nil {
			return err
		}
	}
	a.datasetName = ds.Name
	a.logger.Info("loading dataset", "dataset", ds.Name, "nodes", len(ds.Nodes), "edges", len(ds.Edges))
	if a.graph, err = dataset.BuildWithLogger(ds, a.logger); err != nil {
		return err
	}

	return nil
}

func (a *app) engineOptions() []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithWorkers(a.cfg.Engine.Workers)}
	if a.cfg.Engine.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(a.cfg.Engine.MaxDistance))
	}

	return opts
}

func (a *app) jsonOutput() bool { return a.cfg.Output.Format == "json" }

func (a *app) writeResults(results []dijkstra.PathResult) error {
	if a.jsonOutput() {
		return report.JSON(a.out, results)
	}

	return report.Text(a.out, results)
}

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two districts",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			res, err := dijkstra.ShortestPath(a.graph, args[0], args[1], a.engineOptions()...)
			if err != nil {
				return err
			}
			a.logger.Debug("route computed", "from", args[0], "to", args[1], "reachable", res.Reachable())

			return a.writeResults([]dijkstra.PathResult{res})
		},
	}
}

func (a *app) distancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distances FROM",
		Short: "Print the shortest distance from one district to every other",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tree, err := dijkstra.Run(a.graph, args[0], a.engineOptions()...)
			if err != nil {
				return err
			}
			vertices := a.graph.Vertices()
			if a.jsonOutput() {
				results := make([]dijkstra.PathResult, 0, len(vertices))
				for _, v := range vertices {
					results = append(results, tree.PathTo(v))
				}
				return report.JSON(a.out, results)
			}

			return report.Distances(a.out, args[0], tree.Distances(), vertices)
		},
	}
}

func (a *app) allPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all-pairs",
		Short: "Print the shortest route for every ordered pair of districts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			all, err := dijkstra.AllPairs(cmd.Context(), a.graph, a.engineOptions()...)
			if err != nil {
				return err
			}
			a.logger.Info("all-pairs computed",
				"pairs", len(all),
				"workers", a.cfg.Engine.Workers,
				"elapsed", time.Since(start))

			pairs := report.OrderedPairs(a.graph.InsertionOrder())

			return a.writeResults(report.Collect(all, pairs))
		},
	}
}

func (a *app) graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the district adjacency list",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.jsonOutput() {
				return encodeJSON(a.out, dataset.FromGraph(a.graph, a.datasetName))
			}

			return report.Adjacency(a.out, a.graph)
		},
	}
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Print groups of districts connected by road",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			comps, err := bfs.Components(a.graph)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return encodeJSON(a.out, comps)
			}

			return report.Components(a.out, comps)
		},
	}
}

func (a *app) backboneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backbone",
		Short: "Print the cheapest set of roads that keeps every district connected",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			edges, total, err := mst.Kruskal(a.graph)
			if err != nil {
				return err
			}
			a.logger.Debug("backbone computed", "edges", len(edges), "total", total)
			if a.jsonOutput() {
				roads := make([]dataset.Edge, 0, len(edges))
				for _, e := range edges {
					roads = append(roads, dataset.Edge{From: e.From, To: e.To, Weight: e.Weight})
				}
				return encodeJSON(a.out, struct {
					Edges []dataset.Edge `json:"edges"`
					Total float64        `json:"total"`
				}{roads, total})
			}

			return report.Backbone(a.out, edges, total)
		},
	}
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode failed: %w", err)
	}

	return nil
}
