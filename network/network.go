// File: network.go
// Role: Network construction (validation + interning) and read-only queries.
//
// Determinism:
//   - Indices follow input order; IDs() and RewardIDs() enumerate in index order.
//   - NeighborIndices(i) is sorted ascending; Neighbors(id) follows the same order.
//
// Concurrency:
//   - No locks: every field is written once inside New and only read afterwards.
package network

import (
	"fmt"
	"sort"
)

// New validates specs and builds an immutable Network.
//
// Implementation:
//   - Stage 1: Intern ids in input order; reject empty/duplicate ids and negative rates.
//   - Stage 2: Resolve tunnels to indices; reject dangling references.
//   - Stage 3: Mirror every tunnel, drop self-tunnels, sort and de-duplicate rows.
//
// Errors:
//   - ErrMalformedGraph (wrapped with the offending ids) on any inconsistency.
//
// Complexity:
//   - Time O(V + E·log d), Space O(V + E).
func New(specs []NodeSpec) (*Network, error) {
	n := len(specs)
	net := &Network{
		ids:   make([]string, n),
		index: make(map[string]int, n),
		rates: make([]int, n),
		adj:   make([][]int, n),
	}

	// Stage 1: interning.
	for i, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: node #%d has an empty id", ErrMalformedGraph, i)
		}
		if _, dup := net.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrMalformedGraph, s.ID)
		}
		if s.Rate < 0 {
			return nil, fmt.Errorf("%w: node %q has negative rate %d", ErrMalformedGraph, s.ID, s.Rate)
		}
		net.ids[i] = s.ID
		net.index[s.ID] = i
		net.rates[i] = s.Rate
	}

	// Stage 2+3: resolve and mirror tunnels.
	for i, s := range specs {
		for _, to := range s.Tunnels {
			j, ok := net.index[to]
			if !ok {
				return nil, fmt.Errorf("%w: node %q has a tunnel to unknown node %q", ErrMalformedGraph, s.ID, to)
			}
			if i == j {
				continue
			}
			net.adj[i] = append(net.adj[i], j)
			net.adj[j] = append(net.adj[j], i)
		}
	}
	for i := range net.adj {
		net.adj[i] = sortUnique(net.adj[i])
		net.edges += len(net.adj[i])
	}
	net.edges /= 2

	return net, nil
}

// sortUnique sorts row ascending and drops repeated entries in place.
func sortUnique(row []int) []int {
	if len(row) < 2 {
		return row
	}
	sort.Ints(row)
	out := row[:1]
	for _, v := range row[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.ids) }

// EdgeCount returns the number of distinct undirected tunnels.
func (n *Network) EdgeCount() int { return n.edges }

// ID returns the id interned at index i. It panics if i is out of range,
// like a slice access.
func (n *Network) ID(i int) string { return n.ids[i] }

// Index returns the interned index of id and whether it exists.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]

	return i, ok
}

// Has reports whether id is part of the network.
func (n *Network) Has(id string) bool {
	_, ok := n.index[id]

	return ok
}

// IDs returns a copy of all node ids in index order.
func (n *Network) IDs() []string {
	out := make([]string, len(n.ids))
	copy(out, n.ids)

	return out
}

// RateAt returns the reward rate of node i.
func (n *Network) RateAt(i int) int { return n.rates[i] }

// Rate returns the reward rate of id, or ErrUnknownNode.
func (n *Network) Rate(id string) (int, error) {
	i, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return n.rates[i], nil
}

// NeighborIndices returns the sorted neighbor indices of node i.
// The slice is shared with the Network and must not be modified.
func (n *Network) NeighborIndices(i int) []int { return n.adj[i] }

// Neighbors returns the direct neighbors of id with their unit cost, or
// ErrUnknownNode.
func (n *Network) Neighbors(id string) ([]Neighbor, error) {
	i, ok := n.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Neighbor, len(n.adj[i]))
	for k, j := range n.adj[i] {
		out[k] = Neighbor{ID: n.ids[j], Cost: TunnelCost}
	}

	return out, nil
}

// RewardIDs returns, in index order, the ids of nodes with a positive rate.
func (n *Network) RewardIDs() []string {
	var out []string
	for i, r := range n.rates {
		if r > 0 {
			out = append(out, n.ids[i])
		}
	}

	return out
}

// Specs reconstructs construction input equivalent to the network: one
// NodeSpec per node in index order with every (mirrored) tunnel listed.
// New(n.Specs()) yields an identical network.
func (n *Network) Specs() []NodeSpec {
	out := make([]NodeSpec, len(n.ids))
	for i, id := range n.ids {
		tunnels := make([]string, len(n.adj[i]))
		for k, j := range n.adj[i] {
			tunnels[k] = n.ids[j]
		}
		out[i] = NodeSpec{ID: id, Rate: n.rates[i], Tunnels: tunnels}
	}

	return out
}
