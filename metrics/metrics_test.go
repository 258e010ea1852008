package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/metrics"
	"github.com/katalvlaran/volcano/network"
	"github.com/katalvlaran/volcano/optimizer"
)

func TestObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.ObserveSearch("single", 1651, optimizer.Stats{Targets: 6, States: 120, Pruned: 30}, 2*time.Millisecond)
	c.ObserveSearch("team", 1707, optimizer.Stats{Targets: 6, States: 80, Pruned: 5}, time.Millisecond)

	require.Equal(t, 200.0, testutil.ToFloat64(c.States))
	require.Equal(t, 35.0, testutil.ToFloat64(c.Pruned))
	require.Equal(t, 1651.0, testutil.ToFloat64(c.Best.WithLabelValues("single")))
	require.Equal(t, 1707.0, testutil.ToFloat64(c.Best.WithLabelValues("team")))
	require.Equal(t, 2, testutil.CollectAndCount(c.SolveDuration))

	expected := `
# HELP volcano_best_total Best total of the most recent search
# TYPE volcano_best_total gauge
volcano_best_total{mode="single"} 1651
volcano_best_total{mode="team"} 1707
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "volcano_best_total"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	require.Error(t, err)
}

// TestCollectorAsObserver wires the collector into a real solve.
func TestCollectorAsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	net, err := network.New([]network.NodeSpec{
		{ID: "AA", Tunnels: []string{"BB"}},
		{ID: "BB", Rate: 5},
	})
	require.NoError(t, err)
	res, err := optimizer.SolveNetwork(net, "AA", 3, optimizer.WithObserver(c))
	require.NoError(t, err)
	require.Equal(t, 5, res.Total)

	require.Equal(t, 5.0, testutil.ToFloat64(c.Best.WithLabelValues("single")))
	require.Equal(t, float64(res.Stats.States), testutil.ToFloat64(c.States))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)
	c.ObserveSearch("single", 42, optimizer.Stats{States: 7}, time.Millisecond)

	path := filepath.Join(t.TempDir(), "volcano.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `volcano_best_total{mode="single"} 42`)
	require.Contains(t, string(data), "volcano_search_states_total 7")

	err = metrics.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg)
	require.Error(t, err)
}
