package network

import "errors"

// Sentinel errors for network construction and queries.
var (
	// ErrMalformedGraph indicates inconsistent construction input
	// (empty or duplicate id, negative rate, dangling tunnel).
	ErrMalformedGraph = errors.New("network: malformed graph")

	// ErrUnknownNode indicates a query referenced an id absent from the network.
	ErrUnknownNode = errors.New("network: unknown node")
)

// TunnelCost is the traversal cost of every tunnel.
const TunnelCost = 1

// NodeSpec is one construction triple: a node id, its reward rate and the
// ids it has tunnels to.
type NodeSpec struct {
	// ID uniquely identifies the node.
	ID string

	// Rate is the reward accrued per remaining time unit once the node is
	// activated. Must be non-negative.
	Rate int

	// Tunnels lists adjacent node ids. Every entry must name a node of the
	// same input.
	Tunnels []string
}

// Neighbor is an adjacent node together with the cost of reaching it.
type Neighbor struct {
	ID   string
	Cost int
}

// Network is an immutable, index-addressed tunnel graph.
//
// ids[i] is the id interned at index i; index is its inverse.
// rates[i] is the reward rate of node i.
// adj[i] holds the neighbor indices of node i, sorted ascending and unique.
type Network struct {
	ids   []string
	index map[string]int
	rates []int
	adj   [][]int
	edges int
}
