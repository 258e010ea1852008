package distance

import "fmt"

// Len returns the number of vertices covered by the table.
func (m *Matrix) Len() int { return m.n }

// IDs returns a copy of the ids in table order.
func (m *Matrix) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// ID returns the id of row/column i.
func (m *Matrix) ID(i int) string { return m.ids[i] }

// Index returns the row/column of id and whether id is covered.
func (m *Matrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// At returns the distance between rows i and j (or Unreachable).
// It panics on out-of-range indices, like a slice access; callers on the hot
// path resolve indices once via Index.
func (m *Matrix) At(i, j int) int { return m.data[i*m.n+j] }

// Distance returns the shortest distance from a to b, or Unreachable when no
// path exists. Fails with ErrUnknownNode if either id is not covered.
func (m *Matrix) Distance(a, b string) (int, error) {
	i, j, err := m.pair(a, b)
	if err != nil {
		return 0, err
	}

	return m.At(i, j), nil
}

// Reachable reports whether any path joins a and b.
func (m *Matrix) Reachable(a, b string) (bool, error) {
	d, err := m.Distance(a, b)
	if err != nil {
		return false, err
	}

	return d != Unreachable, nil
}

// pair resolves both ids or reports the first unknown one.
func (m *Matrix) pair(a, b string) (int, int, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownNode, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownNode, b)
	}

	return i, j, nil
}

// Reduce returns a new table restricted to keep, in the order given.
// Repeated ids are kept once (first occurrence). Distances are copied from
// the full table, so they remain shortest paths through the whole graph,
// including nodes that were dropped.
//
// Errors:
//   - ErrUnknownNode if any id of keep is not covered.
//
// Complexity:
//   - Time O(k²), Space O(k²) for k distinct ids.
func (m *Matrix) Reduce(keep []string) (*Matrix, error) {
	rows := make([]int, 0, len(keep))
	out := &Matrix{index: make(map[string]int, len(keep))}
	for _, id := range keep {
		i, ok := m.index[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
		if _, dup := out.index[id]; dup {
			continue
		}
		out.index[id] = len(out.ids)
		out.ids = append(out.ids, id)
		rows = append(rows, i)
	}

	out.n = len(rows)
	out.data = make([]int, out.n*out.n)
	for a, i := range rows {
		for b, j := range rows {
			out.data[a*out.n+b] = m.At(i, j)
		}
	}

	return out, nil
}
