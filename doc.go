// Package volcano finds the most valuable order in which to activate reward
// nodes of a tunnel network before a time budget runs out.
//
// A network is a set of nodes joined by undirected unit-cost tunnels. Each
// node carries a non-negative reward rate; activating a node costs one unit
// of time and from then on yields its rate for every remaining unit. Most
// nodes are pass-through (rate 0), so the search only ever branches on the
// few reward nodes.
//
// Packages:
//
//	network   - immutable, interned tunnel graph built from node specs
//	parse     - line-oriented input reader ("Valve AA has flow rate=0; ...")
//	bfs       - breadth-first traversal over index-addressed graphs
//	distance  - all-pairs shortest tunnel distances, one BFS per source
//	optimizer - branch-and-bound search for one actor, subset split for two
//	metrics   - Prometheus collector fed by optimizer summaries
//	config    - YAML + VOLCANO_* environment configuration
//	cmd/volcano - the command-line front end
//
// Quick start:
//
//	net, _ := parse.File("input.txt")
//	res, _ := optimizer.SolveNetwork(net, "AA", 30)
//	fmt.Println(res.Total)
package volcano
