// Package bfs provides breadth-first search over an index-addressed graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (Unreached if not reached)
//   - Parent: per-vertex predecessor in the BFS tree (Unreached for the root)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time; the distance package runs
//     one BFS per source to fill its all-pairs table.
//   - Vertices are plain indices, so Depth and Parent are slices rather than
//     maps and the traversal never hashes strings.
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.NeighborIndices returns them.
//	*network.Network returns sorted rows, so the visit sequence is reproducible.
//
// Complexity (V = Len(), E = total neighbor entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(net, start)
//	res, err := bfs.BFS(
//	    net, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != blocked }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if start is outside [0, Len()).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
