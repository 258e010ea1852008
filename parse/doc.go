// Package parse reads the line-oriented node listing into network specs.
//
// Each non-blank line describes one node:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// The singular and plural wordings are both accepted. Blank lines are
// skipped; any other line that does not match yields ErrSyntax wrapped with
// its 1-based line number. Semantic checks (duplicates, dangling tunnels,
// negative rates) are left to network.New.
package parse
