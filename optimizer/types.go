package optimizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for solver construction and search.
var (
	// ErrNilInput is returned when New receives a nil network or matrix.
	ErrNilInput = errors.New("optimizer: nil network or distance matrix")

	// ErrMismatch is returned when the distance matrix does not cover every
	// reward-bearing node of the network.
	ErrMismatch = errors.New("optimizer: distance matrix does not cover the network")

	// ErrUnknownNode is returned when the entry node is absent from the matrix.
	ErrUnknownNode = errors.New("optimizer: unknown node")

	// ErrNegativeBudget is returned when the initial time budget is negative.
	ErrNegativeBudget = errors.New("optimizer: negative time budget")

	// ErrTooManyTargets is returned when the reward set does not fit the
	// bitmask state (64 for Solve, MaxTeamTargets for SolveTeam).
	ErrTooManyTargets = errors.New("optimizer: too many reward nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("optimizer: invalid option supplied")
)

const (
	// MaxTargets is the largest reward set a single-actor search accepts.
	MaxTargets = 64

	// MaxTeamTargets bounds SolveTeam, whose per-subset table has 2^k entries.
	MaxTeamTargets = 20

	// cancelCheckMask throttles context checks to one per 4096 states.
	cancelCheckMask = 4095
)

// BoundAlgo selects the pruning policy of the search.
type BoundAlgo int

const (
	// SimpleBound prunes with an admissible rate-ordered slot bound (default).
	SimpleBound BoundAlgo = iota

	// NoBound disables pruning; the search enumerates every feasible order.
	NoBound
)

// String implements fmt.Stringer.
func (b BoundAlgo) String() string {
	switch b {
	case SimpleBound:
		return "simple"
	case NoBound:
		return "none"
	default:
		return fmt.Sprintf("BoundAlgo(%d)", int(b))
	}
}

// Observer receives a summary after every completed search.
// mode is "single" for Solve and "team" for SolveTeam.
type Observer interface {
	ObserveSearch(mode string, best int, stats Stats, elapsed time.Duration)
}

// Options configures a Solver.
type Options struct {
	// Ctx allows cancellation; checked every 4096 search states.
	Ctx context.Context

	// Bound selects the pruning policy.
	Bound BoundAlgo

	// Workers > 1 explores first-level branches concurrently.
	Workers int

	// Logger receives debug events (incumbent improvements, summaries).
	Logger logrus.FieldLogger

	// Observer, if set, is notified after each search.
	Observer Observer

	err error
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns background context, SimpleBound, one worker,
// a discarding logger and no observer.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Ctx:     context.Background(),
		Bound:   SimpleBound,
		Workers: 1,
		Logger:  l,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBound selects the pruning policy.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) {
		if b != SimpleBound && b != NoBound {
			o.err = fmt.Errorf("%w: unknown bound %v", ErrOptionViolation, b)
			return
		}
		o.Bound = b
	}
}

// WithWorkers sets how many first-level branches may be searched at once.
// n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes debug events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers obs to receive per-search summaries.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// Activation is one step of a plan: Node is activated when Minute units of
// the budget have elapsed, leaving Remaining units, and contributes
// Gain = rate × Remaining.
type Activation struct {
	Node      string
	Minute    int
	Remaining int
	Gain      int
}

// Stats describes the work done by a search.
type Stats struct {
	// Targets is the number of reward-bearing nodes considered.
	Targets int

	// States counts visited search states (including the root).
	States int64

	// Pruned counts states whose subtree was cut by the bound.
	Pruned int64
}

// add accumulates another search's counters.
func (s *Stats) add(o Stats) {
	s.States += o.States
	s.Pruned += o.Pruned
}

// Result is the outcome of Solve.
type Result struct {
	// Total is the maximum accumulated reward.
	Total int

	// Plan is the first optimal activation order in branching order.
	Plan []Activation

	Stats Stats
}

// TeamResult is the outcome of SolveTeam: two actors with disjoint plans.
type TeamResult struct {
	Total int
	Plans [2][]Activation
	Stats Stats
}
