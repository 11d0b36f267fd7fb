package matrix

// Filter invokes pred with an independent copy of every row in ascending
// index order and returns a new matrix holding exactly the rows for which
// pred returned true, in their original relative order. The result keeps the
// column count and may have zero rows.
func (m *Matrix[T]) Filter(pred func(row []T, i int) bool) *Matrix[T] {
	rows, cols := m.Dims()
	data := m.Data()
	kept := make([]T, 0, rows*cols)
	count := 0
	for r := 0; r < rows; r++ {
		if pred(m.Row(r), r) {
			kept = append(kept, data[r*cols:(r+1)*cols]...)
			count++
		}
	}
	out, err := Wrap(kept, count, cols)
	if err != nil {
		panic(err) // kept is count*cols elements by construction
	}
	return out
}

// Slice returns an independent copy of rows [start, end). The end index is
// optional and defaults to Rows. Both bounds are clamped to [0, Rows], and
// an end before start yields an empty matrix.
func (m *Matrix[T]) Slice(start int, end ...int) *Matrix[T] {
	rows, cols := m.Dims()
	stop := rows
	if len(end) > 0 {
		stop = end[0]
	}
	start = clamp(start, 0, rows)
	stop = clamp(stop, 0, rows)
	if stop < start {
		stop = start
	}
	out := Zeros[T](stop-start, cols)
	copy(out.Data(), m.Data()[start*cols:stop*cols])
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
