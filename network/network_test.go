package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/network"
)

// square returns A–B–C–D–A with a single reward node C.
func square() []network.NodeSpec {
	return []network.NodeSpec{
		{ID: "A", Rate: 0, Tunnels: []string{"B", "D"}},
		{ID: "B", Rate: 0, Tunnels: []string{"C"}},
		{ID: "C", Rate: 7, Tunnels: []string{"D"}},
		{ID: "D", Rate: 0},
	}
}

// TestNew_Errors verifies that every kind of inconsistent input is rejected
// with ErrMalformedGraph.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		specs []network.NodeSpec
	}{
		{"empty id", []network.NodeSpec{{ID: ""}}},
		{"duplicate id", []network.NodeSpec{{ID: "A"}, {ID: "A"}}},
		{"negative rate", []network.NodeSpec{{ID: "A", Rate: -1}}},
		{"dangling tunnel", []network.NodeSpec{{ID: "A", Tunnels: []string{"ZZ"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.New(tc.specs)
			if !errors.Is(err, network.ErrMalformedGraph) {
				t.Fatalf("want ErrMalformedGraph, got %v", err)
			}
		})
	}
}

// TestNew_Empty covers the zero-node network.
func TestNew_Empty(t *testing.T) {
	net, err := network.New(nil)
	require.NoError(t, err)
	require.Equal(t, 0, net.Len())
	require.Equal(t, 0, net.EdgeCount())
	require.Empty(t, net.RewardIDs())
}

// TestNew_MirrorsAndDedups checks that tunnels are undirected, parallel
// tunnels collapse and self-tunnels vanish.
func TestNew_MirrorsAndDedups(t *testing.T) {
	net, err := network.New([]network.NodeSpec{
		{ID: "A", Tunnels: []string{"B", "B", "A"}},
		{ID: "B", Tunnels: []string{"A"}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, net.EdgeCount())

	nbA, err := net.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []network.Neighbor{{ID: "B", Cost: 1}}, nbA)

	nbB, err := net.Neighbors("B")
	require.NoError(t, err)
	require.Equal(t, []network.Neighbor{{ID: "A", Cost: 1}}, nbB)
}

// TestQueries exercises the read-only accessors on a small square.
func TestQueries(t *testing.T) {
	net, err := network.New(square())
	require.NoError(t, err)

	require.Equal(t, 4, net.Len())
	require.Equal(t, 4, net.EdgeCount())
	require.Equal(t, []string{"A", "B", "C", "D"}, net.IDs())
	require.Equal(t, []string{"C"}, net.RewardIDs())

	rate, err := net.Rate("C")
	require.NoError(t, err)
	require.Equal(t, 7, rate)

	i, ok := net.Index("D")
	require.True(t, ok)
	require.Equal(t, "D", net.ID(i))
	require.Equal(t, []int{0, 2}, net.NeighborIndices(i))
	require.True(t, net.Has("B"))
	require.False(t, net.Has("Z"))

	_, err = net.Rate("Z")
	require.ErrorIs(t, err, network.ErrUnknownNode)
	_, err = net.Neighbors("Z")
	require.ErrorIs(t, err, network.ErrUnknownNode)
}

// TestIDsIsACopy ensures callers cannot mutate the interned ids.
func TestIDsIsACopy(t *testing.T) {
	net, err := network.New(square())
	require.NoError(t, err)

	ids := net.IDs()
	ids[0] = "mutated"
	require.Equal(t, "A", net.ID(0))
}

// TestSpecsRoundTrip rebuilds a network from its own Specs.
func TestSpecsRoundTrip(t *testing.T) {
	net, err := network.New(square())
	require.NoError(t, err)

	again, err := network.New(net.Specs())
	require.NoError(t, err)
	require.Equal(t, net.IDs(), again.IDs())
	require.Equal(t, net.EdgeCount(), again.EdgeCount())
	for i := 0; i < net.Len(); i++ {
		require.Equal(t, net.RateAt(i), again.RateAt(i))
		require.Equal(t, net.NeighborIndices(i), again.NeighborIndices(i))
	}
}
