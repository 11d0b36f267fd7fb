package matrix

import "fmt"

// RowSum reduces along rows: the result has one total per column, length
// Cols. Accumulation uses T's native addition, so integer kinds wrap at
// their width and float kinds sum in their own precision. A zero-row matrix
// yields an all-zero result.
func (m *Matrix[T]) RowSum() []T {
	rows, cols := m.Dims()
	out := make([]T, cols)
	data := m.Data()
	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			out[c] += data[off+c]
		}
	}
	return out
}

// ColSum reduces along columns: the result has one total per row, length
// Rows. A zero-column matrix yields an all-zero result.
func (m *Matrix[T]) ColSum() []T {
	rows, cols := m.Dims()
	out := make([]T, rows)
	data := m.Data()
	for r := 0; r < rows; r++ {
		off := r * cols
		var sum T
		for c := 0; c < cols; c++ {
			sum += data[off+c]
		}
		out[r] = sum
	}
	return out
}

// RowMean is RowSum divided by the row count. The divisor is constructed in
// T, so integer kinds divide with truncation and float kinds divide in their
// own precision. With zero rows the division follows T's native behavior:
// floats produce Inf or NaN, integer kinds fault on division by zero.
func (m *Matrix[T]) RowMean() []T {
	out := m.RowSum()
	n := T(m.raw.rows)
	for c := range out {
		out[c] /= n
	}
	return out
}

// ColMean is ColSum divided by the column count, with the same divisor
// semantics as RowMean.
func (m *Matrix[T]) ColMean() []T {
	out := m.ColSum()
	n := T(m.raw.cols)
	for r := range out {
		out[r] /= n
	}
	return out
}

// Transpose returns a new Cols x Rows matrix with a freshly owned buffer.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.Dims()
	out := Zeros[T](cols, rows)
	src, dst := m.Data(), out.Data()
	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			dst[c*rows+r] = src[off+c]
		}
	}
	return out
}

// Dot computes the elementwise-product sum of two equal-shaped matrices.
// Accumulation is column-major (outer index the column, inner the row);
// float summation is not associative, so the order is part of the contract.
func (m *Matrix[T]) Dot(other *Matrix[T]) (T, error) {
	if m.raw.rows != other.raw.rows || m.raw.cols != other.raw.cols {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch,
			m.raw.rows, m.raw.cols, other.raw.rows, other.raw.cols)
	}
	rows, cols := m.Dims()
	a, b := m.Data(), other.Data()
	var sum T
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			i := r*cols + c
			sum += a[i] * b[i]
		}
	}
	return sum, nil
}

// MultiplyDiags multiplies each column j of x by y[j], equivalent to
// right-multiplication by diag(y). The result preserves x's element kind.
// No shape validation is performed: if y is shorter than x's column count
// the remaining columns stay zero, and extra entries of y are ignored.
func MultiplyDiags[T DType](x *Matrix[T], y []T) *Matrix[T] {
	rows, cols := x.Dims()
	out := Zeros[T](rows, cols)
	n := cols
	if len(y) < n {
		n = len(y)
	}
	src, dst := x.Data(), out.Data()
	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < n; c++ {
			dst[off+c] = src[off+c] * y[c]
		}
	}
	return out
}
