// Package network provides the immutable tunnel graph consumed by the
// distance and optimizer packages.
//
// A Network is a set of nodes, each with a non-negative reward rate, joined
// by undirected unit-cost tunnels. Most nodes in realistic inputs are
// pass-through (rate 0); only a handful carry a positive rate.
//
// Construction
//
//	net, err := network.New([]network.NodeSpec{
//	    {ID: "AA", Rate: 0, Tunnels: []string{"BB"}},
//	    {ID: "BB", Rate: 13, Tunnels: []string{"AA"}},
//	})
//
// New validates the whole input up front and fails with ErrMalformedGraph on
// an empty id, a duplicate id, a negative rate, or a tunnel to an id that is
// not part of the node set. Tunnels are mirrored, so listing an edge on one
// side is enough; duplicate tunnels collapse and self-tunnels are dropped.
//
// Interning
//
//	Node ids are interned into dense indices 0..n-1 in input order. Index-based
//	accessors (ID, RateAt, NeighborIndices) are what the hot paths use; the
//	string-keyed accessors (Rate, Neighbors) are for callers at the edge.
//
// Concurrency
//
//	A Network is never mutated after New returns and is safe for concurrent
//	reads without locking. Slices returned by accessors that document "copy"
//	may be modified by the caller; NeighborIndices returns the internal slice
//	and must be treated as read-only.
//
// Errors:
//
//	ErrMalformedGraph - construction input is inconsistent.
//	ErrUnknownNode    - a query referenced an id absent from the network.
package network
