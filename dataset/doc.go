// Package dataset loads, validates and builds district road networks.
//
// A dataset is a YAML document naming an ordered list of nodes and an ordered
// list of weighted, undirected edges:
//
//	name: central-region
//	nodes: [Mchinji, Kasungu, Lilongwe]
//	edges:
//	  - {from: Mchinji, to: Kasungu, weight: 141}
//
// Parse/LoadFile decode and validate the document structurally. Build turns
// it into a core.Graph, inserting nodes first and edges in file order, and
// reports every offending entry at once instead of stopping at the first.
// Default returns the built-in nine-district central-region network.
package dataset
