// Package distance computes the dense all-pairs shortest-distance table of a
// unit-cost graph by running one breadth-first search per source vertex.
//
// What
//
//   - Build(g) runs bfs.BFS from every vertex and stores the resulting
//     depths row by row in a flat, row-major []int of size n×n.
//   - Pairs with no path hold the Unreachable sentinel instead of being
//     omitted, so every lookup is a plain slice read.
//   - Reduce(keep) collapses the table to a subset of ids (e.g. the
//     reward-bearing nodes plus the entry node).
//
// Invariants (for undirected graphs such as *network.Network)
//
//	D(a,a) = 0, D(a,b) = D(b,a), D(a,c) ≤ D(a,b) + D(b,c).
//	The table is never mutated after Build returns and is safe for
//	concurrent reads.
//
// Why BFS and not Floyd–Warshall
//
//	Tunnel graphs are sparse with unit weights: V·BFS costs O(V·(V+E)),
//	below the O(V³) of a dense closure, and each row is independent, which
//	lets WithWorkers build rows on separate goroutines without locks.
//
// Unreachable
//
//	Unreachable is math.MaxInt32: it compares greater than any real distance
//	and still leaves head-room for "+1 activation" arithmetic on int without
//	overflow. Consumers treat any target with D+1 > budget as out of reach.
//
// Errors
//
//   - ErrGraphNil         Build received a nil graph.
//   - ErrOptionViolation  invalid Option (e.g. WithWorkers(0)).
//   - ErrUnknownNode      a query named an id absent from the table.
//   - ctx.Err()           Build was cancelled.
package distance
