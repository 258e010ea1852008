package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/metrics"
	"github.com/katalvlaran/volcano/optimizer"
)

// solveReport is everything one solve run prints.
type solveReport struct {
	RunID   string       `json:"run_id"`
	Start   string       `json:"start"`
	Budget  int          `json:"budget"`
	Total   int          `json:"total"`
	Plan    []planStep   `json:"plan"`
	Elapsed duration     `json:"elapsed"`
	Team    *teamReport  `json:"team,omitempty"`
	Stats   searchCounts `json:"stats"`
}

type teamReport struct {
	Budget  int           `json:"budget"`
	Total   int           `json:"total"`
	Plans   [2][]planStep `json:"plans"`
	Elapsed duration      `json:"elapsed"`
}

type planStep struct {
	Node      string `json:"node"`
	Minute    int    `json:"minute"`
	Remaining int    `json:"remaining"`
	Gain      int    `json:"gain"`
}

type searchCounts struct {
	Targets int   `json:"targets"`
	States  int64 `json:"states"`
	Pruned  int64 `json:"pruned"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		start       string
		budget      int
		teamBudget  int
		workers     int
		noBound     bool
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Find the best activation plan within the time budget",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("start") {
				cfg.Start = start
			}
			if flags.Changed("budget") {
				cfg.Budget = budget
			}
			if flags.Changed("team-budget") {
				cfg.TeamBudget = teamBudget
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("no-bound") {
				cfg.Bound = !noBound
			}
			if flags.Changed("metrics-file") {
				cfg.MetricsFile = metricsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return a.runSolve(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&start, "start", "AA", "Entry node id")
	f.IntVar(&budget, "budget", 30, "Time budget of the single actor")
	f.IntVar(&teamBudget, "team-budget", 26, "Time budget of each of two actors (0 disables)")
	f.IntVar(&workers, "workers", 1, "Parallel workers for distances and search")
	f.BoolVar(&noBound, "no-bound", false, "Disable branch-and-bound pruning")
	f.StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	cfg := a.cfg
	log := a.logger()
	net, err := a.loadNetwork(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	dist, err := distance.Build(net, distance.WithContext(ctx), distance.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	bound := optimizer.SimpleBound
	if !cfg.Bound {
		bound = optimizer.NoBound
	}
	opts := []optimizer.Option{
		optimizer.WithContext(ctx),
		optimizer.WithBound(bound),
		optimizer.WithWorkers(cfg.Workers),
		optimizer.WithLogger(log),
	}

	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		c, err := metrics.New(reg)
		if err != nil {
			return err
		}
		opts = append(opts, optimizer.WithObserver(c))
	}

	s, err := optimizer.New(net, dist, opts...)
	if err != nil {
		return err
	}

	began := time.Now()
	res, err := s.Solve(cfg.Start, cfg.Budget)
	if err != nil {
		return err
	}
	rep := solveReport{
		RunID:   a.runID,
		Start:   cfg.Start,
		Budget:  cfg.Budget,
		Total:   res.Total,
		Plan:    toSteps(res.Plan),
		Elapsed: duration(time.Since(began)),
		Stats:   searchCounts{Targets: res.Stats.Targets, States: res.Stats.States, Pruned: res.Stats.Pruned},
	}
	log.WithFields(logrus.Fields{"total": res.Total, "states": res.Stats.States}).Info("single search done")

	if cfg.TeamBudget > 0 {
		began = time.Now()
		team, err := s.SolveTeam(cfg.Start, cfg.TeamBudget)
		if err != nil {
			return err
		}
		rep.Team = &teamReport{
			Budget:  cfg.TeamBudget,
			Total:   team.Total,
			Plans:   [2][]planStep{toSteps(team.Plans[0]), toSteps(team.Plans[1])},
			Elapsed: duration(time.Since(began)),
		}
		log.WithFields(logrus.Fields{"total": team.Total, "states": team.Stats.States}).Info("team search done")
	}

	if reg != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
		log.WithField("path", cfg.MetricsFile).Debug("metrics written")
	}

	return writeSolve(cmd.OutOrStdout(), cfg.Format, rep)
}

func toSteps(plan []optimizer.Activation) []planStep {
	out := make([]planStep, len(plan))
	for i, p := range plan {
		out[i] = planStep{Node: p.Node, Minute: p.Minute, Remaining: p.Remaining, Gain: p.Gain}
	}

	return out
}
