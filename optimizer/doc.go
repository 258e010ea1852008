// Package optimizer finds the maximum reward collectible by walking a tunnel
// network within a fixed time budget.
//
// Model
//
//	Moving through a tunnel costs one time unit; activating a reward node
//	costs one more and yields rate × (time remaining after activation).
//	Each reward node is activated at most once. Pass-through nodes (rate 0)
//	are never branched on: the search jumps between reward nodes using the
//	precomputed distance.Matrix.
//
// Entry points
//
//	s, err := optimizer.New(net, dist, optimizer.WithWorkers(4))
//	res, err := s.Solve("AA", 30)      // single actor
//	team, err := s.SolveTeam("AA", 26) // two actors, disjoint activations
//	res, err := optimizer.SolveNetwork(net, "AA", 30)
//
// Search
//
//	Depth-first branch-and-bound over (current node, remaining time, open
//	bitmask, running total). Every state is a candidate answer, so the result
//	includes "stop here". With SimpleBound (default) subtrees whose admissible
//	upper bound cannot beat the incumbent are skipped; NoBound enumerates
//	everything and is kept for cross-checking.
//
// Determinism
//
//	Targets are tried in descending rate order with network-index tiebreak
//	and only strict improvements replace the incumbent. Result.Plan is the
//	first optimal plan in that order regardless of bound or worker count.
//
// Concurrency
//
//	A Solver is immutable and may be shared. WithWorkers(n>1) fans the
//	first-level branches out to at most n goroutines, each with a private
//	engine; the merge is a maximum reduction. SolveTeam reconstructs its two
//	plans concurrently.
//
// Errors
//
//   - ErrNilInput, ErrMismatch, ErrTooManyTargets, ErrOptionViolation from New.
//   - ErrNegativeBudget, ErrUnknownNode from Solve/SolveTeam preconditions.
//   - ctx.Err() when the context passed via WithContext is cancelled.
//
// Targets that cannot be reached within the remaining budget are not errors;
// their branches are simply not taken.
package optimizer
