// Package districtroute is an in-memory road network of districts with
// shortest-route queries on top of it.
//
// What is inside?
//
//	A small, thread-safe toolkit that brings together:
//		• Core primitives: districts (vertices) and roads (weighted, undirected edges)
//		• Shortest paths: Dijkstra, single pair, single source and all pairs
//		• Traversal: breadth-first walks and connected components
//		• Backbone: minimum spanning tree (Kruskal)
//		• Datasets: YAML road networks, with the central region built in
//		• Reports: the classic "Shortest path from A to B" listing, or JSON
//
// Packages:
//
//	core/      — Graph, Edge and the sentinel errors for construction
//	dijkstra/  — ShortestPath, Distances, Run and AllPairs
//	bfs/       — BFS walker and Components
//	mst/       — Kruskal over a core.Graph
//	dataset/   — Parse, LoadFile, Default, Build and FromGraph
//	report/    — text and JSON rendering of results
//	cmd/districtroute — the command-line front end
//
// Quick start:
//
//	g, _ := dataset.Build(dataset.Default())
//	res, _ := dijkstra.ShortestPath(g, "Mchinji", "Dowa")
//	fmt.Println(res.Path, res.Weight) // [Mchinji Lilongwe Dowa] 164
//
// A target that cannot be reached is not an error: the result has an empty
// path and an infinite weight.
package districtroute
