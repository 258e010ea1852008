// Package metrics exposes optimizer search summaries as Prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/volcano/optimizer"
)

// Collector records one observation per finished search. It implements
// optimizer.Observer.
type Collector struct {
	SolveDuration *prometheus.HistogramVec
	States        prometheus.Counter
	Pruned        prometheus.Counter
	Best          *prometheus.GaugeVec
}

// New builds a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "volcano_solve_duration_seconds",
				Help:    "Search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		States: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "volcano_search_states_total",
				Help: "Total search states visited",
			},
		),
		Pruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "volcano_search_pruned_total",
				Help: "Total subtrees cut by the bound",
			},
		),
		Best: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "volcano_best_total",
				Help: "Best total of the most recent search",
			},
			[]string{"mode"},
		),
	}

	for _, m := range []prometheus.Collector{c.SolveDuration, c.States, c.Pruned, c.Best} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveSearch implements optimizer.Observer.
func (c *Collector) ObserveSearch(mode string, best int, stats optimizer.Stats, elapsed time.Duration) {
	c.SolveDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	c.States.Add(float64(stats.States))
	c.Pruned.Add(float64(stats.Pruned))
	c.Best.WithLabelValues(mode).Set(float64(best))
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
