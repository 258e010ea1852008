package distance_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/network"
)

// sample is the published ten-node tunnel network.
func sample() []network.NodeSpec {
	return []network.NodeSpec{
		{ID: "AA", Rate: 0, Tunnels: []string{"DD", "II", "BB"}},
		{ID: "BB", Rate: 13, Tunnels: []string{"CC", "AA"}},
		{ID: "CC", Rate: 2, Tunnels: []string{"DD", "BB"}},
		{ID: "DD", Rate: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{ID: "EE", Rate: 3, Tunnels: []string{"FF", "DD"}},
		{ID: "FF", Rate: 0, Tunnels: []string{"EE", "GG"}},
		{ID: "GG", Rate: 0, Tunnels: []string{"FF", "HH"}},
		{ID: "HH", Rate: 22, Tunnels: []string{"GG"}},
		{ID: "II", Rate: 0, Tunnels: []string{"AA", "JJ"}},
		{ID: "JJ", Rate: 21, Tunnels: []string{"II"}},
	}
}

// randomSparse samples an Erdős–Rényi-like network over n nodes where each
// unordered pair is joined with probability p. Fixed seed, fixed trial order.
func randomSparse(t testing.TB, n int, p float64, seed int64) *network.Network {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	specs := make([]network.NodeSpec, n)
	for i := range specs {
		specs[i] = network.NodeSpec{ID: fmt.Sprintf("n%d", i), Rate: rng.Intn(4)}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				specs[i].Tunnels = append(specs[i].Tunnels, specs[j].ID)
			}
		}
	}
	net, err := network.New(specs)
	require.NoError(t, err)

	return net
}

// DistanceSuite exercises Build and the table queries.
type DistanceSuite struct {
	suite.Suite
	net *network.Network
	dm  *distance.Matrix
}

func (s *DistanceSuite) SetupTest() {
	var err error
	s.net, err = network.New(sample())
	s.Require().NoError(err)
	s.dm, err = distance.Build(s.net)
	s.Require().NoError(err)
}

// TestKnownDistances checks a handful of hand-computed distances.
func (s *DistanceSuite) TestKnownDistances() {
	cases := []struct {
		a, b string
		want int
	}{
		{"AA", "AA", 0},
		{"AA", "DD", 1},
		{"AA", "CC", 2},
		{"AA", "HH", 5},
		{"AA", "JJ", 2},
		{"JJ", "HH", 7},
		{"BB", "EE", 3},
	}
	for _, tc := range cases {
		got, err := s.dm.Distance(tc.a, tc.b)
		s.Require().NoError(err)
		s.Equal(tc.want, got, "%s→%s", tc.a, tc.b)
	}
}

// TestUnknownNode verifies ErrUnknownNode for either side of the pair.
func (s *DistanceSuite) TestUnknownNode() {
	_, err := s.dm.Distance("AA", "ZZ")
	s.ErrorIs(err, distance.ErrUnknownNode)
	_, err = s.dm.Distance("ZZ", "AA")
	s.ErrorIs(err, distance.ErrUnknownNode)
	_, err = s.dm.Reachable("ZZ", "AA")
	s.ErrorIs(err, distance.ErrUnknownNode)
}

// TestReduce collapses the table to the reward nodes plus the entry.
func (s *DistanceSuite) TestReduce() {
	keep := append([]string{"AA"}, s.net.RewardIDs()...)
	keep = append(keep, "AA") // duplicate is dropped
	r, err := s.dm.Reduce(keep)
	s.Require().NoError(err)
	s.Equal([]string{"AA", "BB", "CC", "DD", "EE", "HH", "JJ"}, r.IDs())

	d, err := r.Distance("JJ", "HH")
	s.Require().NoError(err)
	s.Equal(7, d, "reduced table keeps paths through dropped nodes")

	_, err = s.dm.Reduce([]string{"AA", "nope"})
	s.ErrorIs(err, distance.ErrUnknownNode)
}

func TestDistanceSuite(t *testing.T) {
	suite.Run(t, new(DistanceSuite))
}

// TestBuild_Errors covers nil graphs and invalid options.
func TestBuild_Errors(t *testing.T) {
	_, err := distance.Build(nil)
	require.ErrorIs(t, err, distance.ErrGraphNil)

	net, err := network.New(sample())
	require.NoError(t, err)
	_, err = distance.Build(net, distance.WithWorkers(0))
	require.ErrorIs(t, err, distance.ErrOptionViolation)
}

// TestBuild_Cancelled verifies a cancelled context aborts the build.
func TestBuild_Cancelled(t *testing.T) {
	net, err := network.New(sample())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err = distance.Build(net, distance.WithContext(ctx), distance.WithWorkers(workers))
		require.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

// TestBuild_Unreachable stores the sentinel for disconnected pairs.
func TestBuild_Unreachable(t *testing.T) {
	net, err := network.New([]network.NodeSpec{
		{ID: "A", Tunnels: []string{"B"}},
		{ID: "B"},
		{ID: "C", Rate: 9},
	})
	require.NoError(t, err)
	dm, err := distance.Build(net)
	require.NoError(t, err)

	d, err := dm.Distance("A", "C")
	require.NoError(t, err)
	require.Equal(t, distance.Unreachable, d)
	ok, err := dm.Reachable("C", "A")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, dm.At(2, 2))
}

// TestBuild_Empty handles a network with no nodes.
func TestBuild_Empty(t *testing.T) {
	net, err := network.New(nil)
	require.NoError(t, err)
	dm, err := distance.Build(net)
	require.NoError(t, err)
	require.Equal(t, 0, dm.Len())
}

// TestMetricProperties checks zero diagonal, symmetry and the triangle
// inequality on random sparse networks, including disconnected ones.
func TestMetricProperties(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		net := randomSparse(t, 24, 0.08, seed)
		dm, err := distance.Build(net)
		require.NoError(t, err)

		n := dm.Len()
		for a := 0; a < n; a++ {
			require.Equal(t, 0, dm.At(a, a))
			for b := 0; b < n; b++ {
				require.Equal(t, dm.At(a, b), dm.At(b, a), "seed %d: asymmetric %d,%d", seed, a, b)
				for c := 0; c < n; c++ {
					ab, bc := dm.At(a, b), dm.At(b, c)
					if ab == distance.Unreachable || bc == distance.Unreachable {
						continue
					}
					require.LessOrEqual(t, dm.At(a, c), ab+bc, "seed %d: triangle %d,%d,%d", seed, a, b, c)
				}
			}
		}
	}
}

// TestWorkersAgree builds the same table sequentially and in parallel.
func TestWorkersAgree(t *testing.T) {
	net := randomSparse(t, 60, 0.05, 42)
	seq, err := distance.Build(net)
	require.NoError(t, err)
	par, err := distance.Build(net, distance.WithWorkers(8))
	require.NoError(t, err)

	for a := 0; a < seq.Len(); a++ {
		for b := 0; b < seq.Len(); b++ {
			require.Equal(t, seq.At(a, b), par.At(a, b))
		}
	}
}
