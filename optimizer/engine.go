// Package optimizer — branch-and-bound depth-first search over bitmask state.
//
// The engine explores activation orders of reward nodes. A state is
// (current target, remaining time, open bitmask, running total); it is
// passed by value through the recursion and never shared.
//
// Rationale (succinct):
//  1. Targets are renumbered in descending rate order (index tiebreak), so
//     bit t of the open mask is also the t-th best rate. Branching and the
//     bound both walk bits in ascending order without sorting.
//  2. Every state is a candidate answer: stopping early is always allowed.
//     Only strict improvements replace the incumbent, which makes the
//     reported plan the first optimal one in branching order.
//  3. Bound (SimpleBound): from the current node the first activation
//     happens no earlier than dmin+1 units from now, where dmin is the nearest
//     open target; each further activation costs at least hop+1 where hop is
//     the smallest distance between two targets. Pairing the k-th largest
//     open rate with the k-th latest possible slot gives, by the
//     rearrangement inequality, an upper bound on any completion:
//     UB = Σ_k rate_k · max(0, remaining − dmin − 1 − k·(hop+1)).
//     Prune when total + UB ≤ incumbent.
//  4. Cancellation is polled every 4096 states.
//
// Complexity:
//   - Worst case O(k!) states for k targets; practical cost is set by the bound
//     and by the time budget, which caps path length.
//   - Per state: O(k) for the bound and O(k) for branching.
//   - Memory: O(k) recursion depth + O(k) current path.

package optimizer

import (
	"context"
	"math/bits"

	"github.com/katalvlaran/volcano/distance"
)

// problem is the immutable, start-specific view the engine searches.
type problem struct {
	k      int
	ids    []string // target ids in branching order
	rates  []int    // target rates in branching order (descending)
	from   []int    // from[t] = distance start→t
	hop    []int    // hop[a*k+b] = distance a→b
	minHop int      // smallest distance between two distinct targets
	budget int
}

// dist returns the distance from cur (-1 = start) to target t.
func (p *problem) dist(cur, t int) int {
	if cur < 0 {
		return p.from[t]
	}

	return p.hop[cur*p.k+t]
}

// full returns the mask with one bit per target.
func (p *problem) full() uint64 {
	if p.k == 64 {
		return ^uint64(0)
	}

	return (uint64(1) << p.k) - 1
}

// step is one activation on the current path.
type step struct {
	target    int
	remaining int
	gain      int
}

// engine holds the search data and policies of a single search.
// A dedicated struct keeps hot-path state explicit and lets parallel
// workers each own one.
type engine struct {
	p        *problem
	useBound bool
	ctx      context.Context
	err      error

	path     []step
	best     int
	bestPlan []step
	stats    Stats

	// onState, if set, sees every visited state's activated set and total.
	onState func(activated uint64, total int)

	// onImprove, if set, is called on every new incumbent.
	onImprove func(total int, depth int)
}

// newEngine prepares an engine whose incumbent is below any real total,
// so the root state always becomes the first incumbent.
func newEngine(p *problem, useBound bool, ctx context.Context) *engine {
	return &engine{
		p:        p,
		useBound: useBound,
		ctx:      ctx,
		path:     make([]step, p.k),
		best:     -1,
		bestPlan: make([]step, 0, p.k),
		stats:    Stats{Targets: p.k},
	}
}

// cancelled polls the context every cancelCheckMask+1 states.
func (e *engine) cancelled() bool {
	if e.err != nil {
		return true
	}
	if e.stats.States&cancelCheckMask != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.err = err
		return true
	}

	return false
}

// upperBound returns the most any completion from this state could add.
func (e *engine) upperBound(cur, remaining int, open uint64) int {
	p := e.p
	dmin := distance.Unreachable
	for rest := open; rest != 0; rest &= rest - 1 {
		if d := p.dist(cur, bits.TrailingZeros64(rest)); d < dmin {
			dmin = d
		}
	}
	if dmin == distance.Unreachable {
		return 0
	}

	ub := 0
	slot := remaining - dmin - 1
	stride := p.minHop + 1
	for rest := open; rest != 0 && slot > 0; rest &= rest - 1 {
		ub += p.rates[bits.TrailingZeros64(rest)] * slot
		slot -= stride
	}

	return ub
}

// dfs visits the state (cur, remaining, open, total) at path depth depth.
func (e *engine) dfs(cur, remaining int, open uint64, total, depth int) {
	if e.cancelled() {
		return
	}
	e.stats.States++
	if e.onState != nil {
		e.onState(e.p.full()&^open, total)
	}

	if total > e.best {
		e.best = total
		e.bestPlan = append(e.bestPlan[:0], e.path[:depth]...)
		if e.onImprove != nil {
			e.onImprove(total, depth)
		}
	}

	if e.useBound {
		ub := e.upperBound(cur, remaining, open)
		if ub == 0 {
			return
		}
		if total+ub <= e.best {
			e.stats.Pruned++
			return
		}
	}

	p := e.p
	for rest := open; rest != 0; rest &= rest - 1 {
		t := bits.TrailingZeros64(rest)
		d := p.dist(cur, t)
		if d == distance.Unreachable || d+1 > remaining {
			continue
		}
		left := remaining - d - 1
		gain := p.rates[t] * left
		e.path[depth] = step{target: t, remaining: left, gain: gain}
		e.dfs(t, left, open&^(uint64(1)<<t), total+gain, depth+1)
	}
}

// plan converts the incumbent path into Activations.
func (e *engine) plan() []Activation {
	out := make([]Activation, len(e.bestPlan))
	for i, s := range e.bestPlan {
		out[i] = Activation{
			Node:      e.p.ids[s.target],
			Minute:    e.p.budget - s.remaining,
			Remaining: s.remaining,
			Gain:      s.gain,
		}
	}

	return out
}
