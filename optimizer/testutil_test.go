// Package optimizer_test shares small fixtures and checkers across the
// optimizer test files.
package optimizer_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/network"
	"github.com/katalvlaran/volcano/optimizer"
)

const (
	// sampleBudget and sampleBest are the published single-actor figures.
	sampleBudget = 30
	sampleBest   = 1651

	// teamBudget and teamBest are the published two-actor figures.
	teamBudget = 26
	teamBest   = 1707
)

// sampleSpecs is the published ten-node tunnel network.
func sampleSpecs() []network.NodeSpec {
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

// mustSolver builds network, table and solver or fails the test.
func mustSolver(t testing.TB, specs []network.NodeSpec, opts ...optimizer.Option) (*optimizer.Solver, *distance.Matrix) {
	t.Helper()
	net, err := network.New(specs)
	require.NoError(t, err)
	dm, err := distance.Build(net)
	require.NoError(t, err)
	s, err := optimizer.New(net, dm, opts...)
	require.NoError(t, err)

	return s, dm
}

// randomSpecs samples a sparse network of n nodes (node 0 is the entry "n0")
// in which roughly one node in three carries a positive rate. With chain set
// a path n0–n1–… keeps the network connected; without it, small p leaves
// some reward nodes unreachable.
func randomSpecs(n int, p float64, chain bool, seed int64) []network.NodeSpec {
	rng := rand.New(rand.NewSource(seed))
	specs := make([]network.NodeSpec, n)
	for i := range specs {
		specs[i].ID = fmt.Sprintf("n%d", i)
		if i > 0 && rng.Intn(3) == 0 {
			specs[i].Rate = 1 + rng.Intn(25)
		}
	}
	for i := 0; i < n; i++ {
		if chain && i+1 < n {
			specs[i].Tunnels = append(specs[i].Tunnels, specs[i+1].ID)
		}
		for j := i + 2; j < n; j++ {
			if rng.Float64() < p {
				specs[i].Tunnels = append(specs[i].Tunnels, specs[j].ID)
			}
		}
	}

	return specs
}

// replay re-derives a plan's total from the distance table and checks every
// step is feasible: each activation is reachable in time, no node repeats,
// and Minute/Remaining/Gain are consistent.
func replay(t *testing.T, dm *distance.Matrix, rates map[string]int, start string, budget int, plan []optimizer.Activation) int {
	t.Helper()
	seen := map[string]bool{}
	cur, remaining, total := start, budget, 0
	for i, a := range plan {
		require.False(t, seen[a.Node], "step %d: %s activated twice", i, a.Node)
		seen[a.Node] = true
		d, err := dm.Distance(cur, a.Node)
		require.NoError(t, err)
		require.NotEqual(t, distance.Unreachable, d, "step %d: %s unreachable", i, a.Node)
		remaining -= d + 1
		require.GreaterOrEqual(t, remaining, 0, "step %d: over budget", i)
		require.Equal(t, remaining, a.Remaining, "step %d remaining", i)
		require.Equal(t, budget-remaining, a.Minute, "step %d minute", i)
		require.Equal(t, rates[a.Node]*remaining, a.Gain, "step %d gain", i)
		total += a.Gain
		cur = a.Node
	}

	return total
}

// rateMap indexes rates by id.
func rateMap(specs []network.NodeSpec) map[string]int {
	out := make(map[string]int, len(specs))
	for _, s := range specs {
		out[s.ID] = s.Rate
	}

	return out
}

// bruteForce is an independent reference: plain recursion over string ids
// with a map-based open set and no pruning.
func bruteForce(dm *distance.Matrix, rates map[string]int, cur string, remaining int, open map[string]bool) int {
	best := 0
	for id := range open {
		if !open[id] {
			continue
		}
		d, _ := dm.Distance(cur, id)
		if d == distance.Unreachable || d+1 > remaining {
			continue
		}
		left := remaining - d - 1
		open[id] = false
		if v := rates[id]*left + bruteForce(dm, rates, id, left, open); v > best {
			best = v
		}
		open[id] = true
	}

	return best
}

// openSet returns the positive-rate ids of specs as an open set.
func openSet(specs []network.NodeSpec) map[string]bool {
	out := map[string]bool{}
	for _, s := range specs {
		if s.Rate > 0 {
			out[s.ID] = true
		}
	}

	return out
}
