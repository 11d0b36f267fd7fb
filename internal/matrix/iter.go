package matrix

import "iter"

// RowIter returns a finite, restartable sequence of (index, row copy) pairs
// in ascending row order. Every range over the sequence begins a fresh
// traversal, and each yielded row is an independent copy.
func (m *Matrix[T]) RowIter() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < m.raw.rows; r++ {
			if !yield(r, m.Row(r)) {
				return
			}
		}
	}
}

// ColIter returns a finite, restartable sequence of (index, column copy)
// pairs in ascending column order. Each yielded column is an independent
// copy gathered in O(Rows).
func (m *Matrix[T]) ColIter() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for c := 0; c < m.raw.cols; c++ {
			if !yield(c, m.Col(c)) {
				return
			}
		}
	}
}
