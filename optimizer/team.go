// Package optimizer — two-actor search.
//
// Two actors leave the same entry node with the same budget and act
// independently; a reward node may be activated by at most one of them.
// Because the actors never interact except through the shared reward set,
// the optimum splits into two disjoint single-actor plans:
//
//  1. One exhaustive search (no bound) records, for every activated set S,
//     the best total best[S] of a single actor that activates exactly S.
//  2. A subset-closure pass (sum over subsets, max variant) turns best[S]
//     into the best total using any subset of S, in O(k·2^k).
//  3. The answer is max over S of best[S] + best[full \ S].
//  4. Plans are reconstructed by two restricted single-actor solves, run
//     concurrently on an errgroup.

package optimizer

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SolveTeam returns the best combined total of two actors starting at start
// with budget each, never activating a node twice.
//
// Errors:
//   - ErrNegativeBudget, ErrUnknownNode as for Solve.
//   - ErrTooManyTargets if there are more than MaxTeamTargets reward nodes.
//   - ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(states + k·2^k), Space O(2^k).
func (s *Solver) SolveTeam(start string, budget int) (TeamResult, error) {
	p, err := s.problem(start, budget)
	if err != nil {
		return TeamResult{}, err
	}
	if p.k > MaxTeamTargets {
		return TeamResult{}, fmt.Errorf("%w: %d > %d for two actors", ErrTooManyTargets, p.k, MaxTeamTargets)
	}
	began := time.Now()
	log := s.opts.Logger.WithFields(logrus.Fields{
		"start":   start,
		"budget":  budget,
		"targets": p.k,
		"mode":    "team",
	})

	// Stage 1: best total per exact activated set.
	size := 1 << p.k
	best := make([]int, size)
	e := newEngine(p, false, s.opts.Ctx)
	e.onState = func(activated uint64, total int) {
		if total > best[activated] {
			best[activated] = total
		}
	}
	e.dfs(-1, budget, p.full(), 0, 0)
	if e.err != nil {
		return TeamResult{}, e.err
	}
	stats := e.stats

	// Stage 2: closure over subsets.
	for b := 0; b < p.k; b++ {
		bit := 1 << b
		for m := 0; m < size; m++ {
			if m&bit != 0 && best[m^bit] > best[m] {
				best[m] = best[m^bit]
			}
		}
	}

	// Stage 3: best disjoint split (first mask wins ties).
	full := size - 1
	split, total := 0, -1
	for m := 0; m < size; m++ {
		if v := best[m] + best[full^m]; v > total {
			split, total = m, v
		}
	}
	log.WithFields(logrus.Fields{"total": total, "split": split}).Debug("team split chosen")

	// Stage 4: reconstruct both plans.
	var halves [2]Result
	var eg errgroup.Group
	for i, mask := range [2]uint64{uint64(split), uint64(full ^ split)} {
		i, mask := i, mask
		eg.Go(func() error {
			e := newEngine(p, s.opts.Bound == SimpleBound, s.opts.Ctx)
			e.dfs(-1, budget, mask, 0, 0)
			if e.err != nil {
				return e.err
			}
			halves[i] = Result{Total: e.best, Plan: e.plan(), Stats: e.stats}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return TeamResult{}, err
	}
	stats.add(halves[0].Stats)
	stats.add(halves[1].Stats)

	res := TeamResult{
		Total: halves[0].Total + halves[1].Total,
		Plans: [2][]Activation{halves[0].Plan, halves[1].Plan},
		Stats: stats,
	}
	elapsed := time.Since(began)
	log.WithFields(logrus.Fields{
		"best":    res.Total,
		"states":  res.Stats.States,
		"elapsed": elapsed,
	}).Debug("team search finished")
	if s.opts.Observer != nil {
		s.opts.Observer.ObserveSearch("team", res.Total, res.Stats, elapsed)
	}

	return res, nil
}
