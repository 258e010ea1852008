package distance

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/volcano/bfs"
)

// Sentinel errors for distance table construction and queries.
var (
	// ErrGraphNil is returned when Build receives a nil graph.
	ErrGraphNil = errors.New("distance: graph is nil")

	// ErrUnknownNode is returned when a query names an id absent from the table.
	ErrUnknownNode = errors.New("distance: unknown node")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Unreachable is stored for pairs with no connecting path.
const Unreachable = math.MaxInt32

// Graph is what Build needs: a bfs.Graph whose vertices carry string ids.
// *network.Network satisfies it.
type Graph interface {
	bfs.Graph
	ID(i int) string
}

// Options configures Build.
type Options struct {
	// Ctx allows cancellation; it is checked by every per-source BFS.
	Ctx context.Context

	// Workers bounds the number of rows built concurrently. 1 = sequential.
	Workers int

	err error
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns background context and a single worker.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets how many source rows may be built concurrently.
// n must be ≥ 1; otherwise Build fails with ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Matrix is an immutable n×n shortest-distance table keyed by interned ids.
type Matrix struct {
	ids   []string
	index map[string]int
	n     int
	data  []int // row-major, len == n*n
}
