// Package report renders shortest-path results and graph structure for humans
// (plain text, matching the classic "Shortest path from … to …" listing) and
// for machines (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/districtroute/core"
	"github.com/katalvlaran/districtroute/dijkstra"
)

// OrderedPairs returns every ordered pair of distinct labels, outer loop over
// sources, inner loop over targets, both in the given order.
func OrderedPairs(labels []string) []dijkstra.Pair {
	out := make([]dijkstra.Pair, 0, len(labels)*len(labels))
	for _, s := range labels {
		for _, t := range labels {
			if s != t {
				out = append(out, dijkstra.Pair{Source: s, Target: t})
			}
		}
	}

	return out
}

// Collect picks the results for pairs out of all, in pair order.
// Pairs missing from all are skipped.
func Collect(all map[dijkstra.Pair]dijkstra.PathResult, pairs []dijkstra.Pair) []dijkstra.PathResult {
	out := make([]dijkstra.PathResult, 0, len(pairs))
	for _, p := range pairs {
		if r, ok := all[p]; ok {
			out = append(out, r)
		}
	}

	return out
}

// Text writes each result as
//
//	Shortest path from A to B: [A X B]
//	Shortest path length: 164
//
// or, when unreachable,
//
//	No path found from A to B.
func Text(w io.Writer, results []dijkstra.PathResult) error {
	for _, r := range results {
		var err error
		if r.Reachable() {
			_, err = fmt.Fprintf(w, "Shortest path from %s to %s: [%s]\nShortest path length: %s\n",
				r.Source, r.Target, strings.Join(r.Path, ", "), formatWeight(r.Weight))
		} else {
			_, err = fmt.Fprintf(w, "No path found from %s to %s.\n", r.Source, r.Target)
		}
		if err != nil {
			return fmt.Errorf("report: write failed: %w", err)
		}
	}

	return nil
}

// jsonResult is the wire shape of a PathResult. Weight is null when unreachable,
// since JSON has no infinity.
type jsonResult struct {
	Source    string   `json:"source"`
	Target    string   `json:"target"`
	Path      []string `json:"path"`
	Weight    *float64 `json:"weight"`
	Hops      int      `json:"hops"`
	Reachable bool     `json:"reachable"`
}

// JSON writes results as an indented JSON array.
func JSON(w io.Writer, results []dijkstra.PathResult) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{
			Source:    r.Source,
			Target:    r.Target,
			Path:      r.Path,
			Hops:      r.Hops(),
			Reachable: r.Reachable(),
		}
		if jr.Path == nil {
			jr.Path = []string{}
		}
		if !math.IsInf(r.Weight, 0) {
			weight := r.Weight
			jr.Weight = &weight
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: json encode failed: %w", err)
	}

	return nil
}

// Distances writes "label: distance" lines sorted by label; vertices absent
// from dist are listed as unreachable when listed in all.
func Distances(w io.Writer, source string, dist map[string]float64, all []string) error {
	labels := append([]string(nil), all...)
	sort.Strings(labels)
	if _, err := fmt.Fprintf(w, "Distances from %s:\n", source); err != nil {
		return fmt.Errorf("report: write failed: %w", err)
	}
	for _, v := range labels {
		var err error
		if d, ok := dist[v]; ok {
			_, err = fmt.Fprintf(w, "  %s: %s\n", v, formatWeight(d))
		} else {
			_, err = fmt.Fprintf(w, "  %s: unreachable\n", v)
		}
		if err != nil {
			return fmt.Errorf("report: write failed: %w", err)
		}
	}

	return nil
}

// Adjacency writes g's adjacency dump followed by a one-line summary.
func Adjacency(w io.Writer, g *core.Graph) error {
	st := g.Stats()
	_, err := fmt.Fprintf(w, "%s%d vertices, %d edges, total weight %s\n",
		g.String(), st.VertexCount, st.EdgeCount, formatWeight(st.TotalWeight))
	if err != nil {
		return fmt.Errorf("report: write failed: %w", err)
	}

	return nil
}

// Components writes one numbered line per connected component.
func Components(w io.Writer, comps [][]string) error {
	for i, c := range comps {
		if _, err := fmt.Fprintf(w, "%d: [%s]\n", i+1, strings.Join(c, ", ")); err != nil {
			return fmt.Errorf("report: write failed: %w", err)
		}
	}

	return nil
}

// Backbone writes the spanning-tree roads, one "A - B: w" line each, and the total.
func Backbone(w io.Writer, edges []core.Edge, total float64) error {
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%s - %s: %s\n", e.From, e.To, formatWeight(e.Weight)); err != nil {
			return fmt.Errorf("report: write failed: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "Backbone length: %s\n", formatWeight(total)); err != nil {
		return fmt.Errorf("report: write failed: %w", err)
	}

	return nil
}

func formatWeight(w float64) string {
	if math.IsInf(w, 1) {
		return "inf"
	}

	return strconv.FormatFloat(w, 'g', -1, 64)
}
