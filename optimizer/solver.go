// Package optimizer — solver entry points.
//
// This file provides:
//   - New: validate inputs and precompute the start-independent part of the
//     problem (target order, rates, pairwise target distances).
//   - Solve: the single-actor search, sequential or fanned out over
//     first-level branches.
//   - SolveNetwork: build the distance table and solve in one call.
package optimizer

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/network"
)

// Solver answers budgeted reward queries over one network. It is immutable
// after New and safe for concurrent use.
type Solver struct {
	dist   *distance.Matrix
	opts   Options
	ids    []string // targets in branching order
	rates  []int
	rows   []int // rows[t] = matrix index of target t
	hop    []int
	minHop int
}

// New validates net and dist and precomputes the reward-node tables.
//
// Implementation:
//   - Stage 1: Apply options; reject nil inputs.
//   - Stage 2: Collect reward nodes (rate > 0) and order them by descending
//     rate, network index breaking ties.
//   - Stage 3: Resolve each target in dist (ErrMismatch if absent) and copy
//     the k×k target distance block plus its smallest off-diagonal entry.
//
// Errors:
//   - ErrNilInput, ErrOptionViolation, ErrMismatch, ErrTooManyTargets.
func New(net *network.Network, dist *distance.Matrix, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if net == nil || dist == nil {
		return nil, ErrNilInput
	}

	ids := net.RewardIDs()
	if len(ids) > MaxTargets {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTargets, len(ids), MaxTargets)
	}
	rates := make(map[string]int, len(ids))
	for _, id := range ids {
		rates[id], _ = net.Rate(id)
	}
	// RewardIDs is in index order, so a stable sort keeps index tiebreaks.
	sort.SliceStable(ids, func(a, b int) bool { return rates[ids[a]] > rates[ids[b]] })

	k := len(ids)
	s := &Solver{
		dist:   dist,
		opts:   o,
		ids:    ids,
		rates:  make([]int, k),
		rows:   make([]int, k),
		hop:    make([]int, k*k),
		minHop: distance.Unreachable,
	}
	for t, id := range ids {
		row, ok := dist.Index(id)
		if !ok {
			return nil, fmt.Errorf("%w: reward node %q missing", ErrMismatch, id)
		}
		s.rates[t] = rates[id]
		s.rows[t] = row
	}
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			d := dist.At(s.rows[a], s.rows[b])
			s.hop[a*k+b] = d
			if a != b && d < s.minHop {
				s.minHop = d
			}
		}
	}

	return s, nil
}

// Targets returns the reward node ids in branching order.
func (s *Solver) Targets() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}

// problem validates the query and binds the start row.
func (s *Solver) problem(start string, budget int) (*problem, error) {
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	row, ok := s.dist.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: entry %q", ErrUnknownNode, start)
	}
	k := len(s.ids)
	p := &problem{
		k:      k,
		ids:    s.ids,
		rates:  s.rates,
		from:   make([]int, k),
		hop:    s.hop,
		minHop: s.minHop,
		budget: budget,
	}
	for t := 0; t < k; t++ {
		p.from[t] = s.dist.At(row, s.rows[t])
	}

	return p, nil
}

// Solve returns the maximum total reward collectible from start within
// budget, activating each reward node at most once.
//
// Errors:
//   - ErrNegativeBudget if budget < 0.
//   - ErrUnknownNode if start is not covered by the distance matrix.
//   - ctx.Err() if the configured context is cancelled mid-search.
func (s *Solver) Solve(start string, budget int) (Result, error) {
	p, err := s.problem(start, budget)
	if err != nil {
		return Result{}, err
	}
	began := time.Now()
	log := s.opts.Logger.WithFields(logrus.Fields{
		"start":   start,
		"budget":  budget,
		"targets": p.k,
		"bound":   s.opts.Bound.String(),
	})

	var res Result
	if s.opts.Workers > 1 && p.k > 1 {
		res, err = s.solveParallel(p, log)
	} else {
		res, err = s.solveSequential(p, p.full(), log)
	}
	if err != nil {
		return Result{}, err
	}

	elapsed := time.Since(began)
	log.WithFields(logrus.Fields{
		"best":    res.Total,
		"states":  res.Stats.States,
		"pruned":  res.Stats.Pruned,
		"elapsed": elapsed,
	}).Debug("search finished")
	if s.opts.Observer != nil {
		s.opts.Observer.ObserveSearch("single", res.Total, res.Stats, elapsed)
	}

	return res, nil
}

// solveSequential runs one engine over the targets in allowed.
func (s *Solver) solveSequential(p *problem, allowed uint64, log logrus.FieldLogger) (Result, error) {
	e := newEngine(p, s.opts.Bound == SimpleBound, s.opts.Ctx)
	e.onImprove = func(total, depth int) {
		log.WithFields(logrus.Fields{"total": total, "depth": depth}).Debug("new incumbent")
	}
	e.dfs(-1, p.budget, allowed, 0, 0)
	if e.err != nil {
		return Result{}, e.err
	}

	return Result{Total: e.best, Plan: e.plan(), Stats: e.stats}, nil
}

// branchResult is the outcome of one first-level branch.
type branchResult struct {
	ran   bool
	total int
	plan  []Activation
	stats Stats
}

// solveParallel searches each feasible first activation on its own engine.
// Branch results are merged by maximum with the lowest branch winning ties,
// which reproduces the plan of the sequential search.
func (s *Solver) solveParallel(p *problem, log logrus.FieldLogger) (Result, error) {
	results := make([]branchResult, p.k)
	eg, ctx := errgroup.WithContext(s.opts.Ctx)
	eg.SetLimit(s.opts.Workers)

	for t := 0; t < p.k; t++ {
		t := t
		d := p.from[t]
		if d == distance.Unreachable || d+1 > p.budget {
			continue
		}
		eg.Go(func() error {
			left := p.budget - d - 1
			gain := p.rates[t] * left
			e := newEngine(p, s.opts.Bound == SimpleBound, ctx)
			e.path[0] = step{target: t, remaining: left, gain: gain}
			e.dfs(t, left, p.full()&^(uint64(1)<<t), gain, 1)
			if e.err != nil {
				return e.err
			}
			results[t] = branchResult{ran: true, total: e.best, plan: e.plan(), stats: e.stats}
			log.WithFields(logrus.Fields{"branch": p.ids[t], "total": e.best}).Debug("branch finished")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	// The root state itself: nothing activated, total 0.
	res := Result{Total: 0, Plan: []Activation{}, Stats: Stats{Targets: p.k, States: 1}}
	for _, br := range results {
		if !br.ran {
			continue
		}
		res.Stats.add(br.stats)
		if br.total > res.Total {
			res.Total = br.total
			res.Plan = br.plan
		}
	}

	return res, nil
}

// SolveNetwork builds the distance table of net and solves in one call.
// Options.Ctx and Options.Workers also drive the table build.
func SolveNetwork(net *network.Network, start string, budget int, opts ...Option) (Result, error) {
	if net == nil {
		return Result{}, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	dist, err := distance.Build(net, distance.WithContext(o.Ctx), distance.WithWorkers(o.Workers))
	if err != nil {
		return Result{}, err
	}
	s, err := New(net, dist, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(start, budget)
}
