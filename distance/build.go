// File: build.go
// Role: all-pairs distance table construction (one BFS per source row).
//
// Determinism:
//   - Row i depends only on BFS from i; the table is identical for any
//     Workers value.
//
// Concurrency:
//   - With Workers > 1 rows are filled by an errgroup limited to Workers
//     goroutines. Each goroutine writes a disjoint row of data, and the
//     graph is only read, so no locking is needed.
package distance

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/volcano/bfs"
)

// Build computes the shortest unit-cost distance between every pair of
// vertices of g.
//
// Implementation:
//   - Stage 1: Apply options; allocate the n×n table and the id index.
//   - Stage 2: For each source, run bfs.BFS and copy its Depth slice into the
//     source's row, mapping bfs.Unreached to Unreachable.
//   - Stage 3: With Workers > 1, Stage 2 runs on an errgroup; the first error
//     (including cancellation) cancels the remaining rows.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ctx.Err(), or a wrapped bfs error.
//
// Complexity:
//   - Time O(V·(V+E)), Space O(V²).
func Build(g Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	m := &Matrix{
		ids:   make([]string, n),
		index: make(map[string]int, n),
		n:     n,
		data:  make([]int, n*n),
	}
	for i := 0; i < n; i++ {
		id := g.ID(i)
		m.ids[i] = id
		m.index[id] = i
	}

	if o.Workers == 1 || n < 2 {
		for src := 0; src < n; src++ {
			if err := m.fillRow(g, src, o); err != nil {
				return nil, err
			}
		}

		return m, nil
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	rowOpts := o
	rowOpts.Ctx = ctx
	for src := 0; src < n; src++ {
		src := src
		eg.Go(func() error {
			return m.fillRow(g, src, rowOpts)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// fillRow runs BFS from src and writes row src of the table.
func (m *Matrix) fillRow(g Graph, src int, o Options) error {
	res, err := bfs.BFS(g, src, bfs.WithContext(o.Ctx))
	if err != nil {
		return fmt.Errorf("distance: row %q: %w", m.ids[src], err)
	}
	row := m.data[src*m.n : (src+1)*m.n]
	for dst, d := range res.Depth {
		if d == bfs.Unreached {
			row[dst] = Unreachable
			continue
		}
		row[dst] = d
	}

	return nil
}
