// Package dijkstra_test provides runnable examples of the shortest-path engine.
package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/districtroute/core"
	"github.com/katalvlaran/districtroute/dijkstra"
)

// ExampleShortestPath finds the road from Mchinji to Dowa. The detour through
// Lilongwe (109+55) beats the route through Kasungu (141+117).
func ExampleShortestPath() {
	// 1) Register the four districts.
	g := core.NewGraph()
	for _, d := range []string{"Mchinji", "Kasungu", "Lilongwe", "Dowa"} {
		_ = g.AddVertex(d)
	}
	// 2) Connect them with road lengths in km.
	_ = g.AddEdge("Mchinji", "Kasungu", 141)
	_ = g.AddEdge("Mchinji", "Lilongwe", 109)
	_ = g.AddEdge("Kasungu", "Dowa", 117)
	_ = g.AddEdge("Lilongwe", "Dowa", 55)

	// 3) Query.
	res, err := dijkstra.ShortestPath(g, "Mchinji", "Dowa")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Weight)
	// Output: [Mchinji Lilongwe Dowa] 164
}

// ExampleShortestPath_unreachable shows that a missing route is a result, not an error.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph()
	_ = g.AddVertex("Lilongwe")
	_ = g.AddVertex("Likoma")

	res, err := dijkstra.ShortestPath(g, "Lilongwe", "Likoma")
	fmt.Println(err, res.Reachable(), res.Weight)
	// Output: <nil> false +Inf
}

// ExampleAllPairs enumerates every ordered pair of a three-district chain.
func ExampleAllPairs() {
	g := core.NewGraph()
	for _, d := range []string{"Dedza", "Ntcheu", "Salima"} {
		_ = g.AddVertex(d)
	}
	_ = g.AddEdge("Salima", "Dedza", 96)
	_ = g.AddEdge("Dedza", "Ntcheu", 74)

	all, err := dijkstra.AllPairs(context.Background(), g, dijkstra.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(all))
	r := all[dijkstra.Pair{Source: "Salima", Target: "Ntcheu"}]
	fmt.Println(r.Path, r.Weight)
	// Output:
	// 6
	// [Salima Dedza Ntcheu] 170
}
