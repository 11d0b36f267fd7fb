package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a generic, row-major 2D container over element type T.
// It wraps a RawMatrix whose runtime tag always matches T.
//
// A Matrix exclusively owns its buffer (unless constructed by Wrap, which
// adopts the caller's slice); Row, Col, Slice, Filter and Transpose always
// return independent copies, never aliases. In-place mutators require the
// caller to serialize access under concurrent use (single-writer
// discipline); the container does no locking.
type Matrix[T DType] struct {
	raw *RawMatrix
}

// New adopts a RawMatrix under the generic element type T.
// Fails with ErrKindMismatch if the runtime tag does not match T.
func New[T DType](raw *RawMatrix) (*Matrix[T], error) {
	var dummy T
	if want := inferDataType(dummy); raw.DType() != want {
		return nil, fmt.Errorf("%w: buffer is %s, requested %s",
			ErrKindMismatch, raw.DType(), want)
	}
	return &Matrix[T]{raw: raw}, nil
}

// Raw returns the underlying RawMatrix.
// Used by the serialization layer for kind-agnostic access.
func (m *Matrix[T]) Raw() *RawMatrix { return m.raw }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.raw.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.raw.cols }

// Dims returns both extents.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.raw.rows, m.raw.cols }

// DType returns the element kind tag.
func (m *Matrix[T]) DType() DataType { return m.raw.dtype }

// NumElements returns the total number of elements.
func (m *Matrix[T]) NumElements() int { return m.raw.NumElements() }

// Data returns a typed view of the flat row-major buffer.
// WARNING: modifications to the returned slice modify the matrix.
func (m *Matrix[T]) Data() []T {
	var dummy T
	return rawSlice[T](m.raw, inferDataType(dummy))
}

// At returns the element at (r, c).
//
// Indices are not validated against the extents: this is the caller's
// responsibility. A flat offset outside the buffer is a hard fault; an
// offset that lands inside the buffer from an invalid (r, c) pair reads
// the wrong element.
func (m *Matrix[T]) At(r, c int) T {
	return m.Data()[r*m.raw.cols+c]
}

// Set overwrites the element at (r, c). Like At, indices are not validated.
// Coercion into T's storage representation is the caller's conversion:
// integer kinds truncate/wrap, float kinds round, per Go's conversion rules.
func (m *Matrix[T]) Set(r, c int, v T) {
	m.Data()[r*m.raw.cols+c] = v
}

// SetAdd adds v to the element at (r, c) in place. The increment is a T, so
// supplying a value from the wrong arithmetic domain is a compile error.
func (m *Matrix[T]) SetAdd(r, c int, v T) {
	m.Data()[r*m.raw.cols+c] += v
}

// SetRow overwrites row r from values, which must have length Cols.
func (m *Matrix[T]) SetRow(r int, values []T) error {
	if len(values) != m.raw.cols {
		return fmt.Errorf("%w: row length %d, want %d", ErrShapeMismatch, len(values), m.raw.cols)
	}
	copy(m.Data()[r*m.raw.cols:(r+1)*m.raw.cols], values)
	return nil
}

// SetCol overwrites column c from values, which must have length Rows.
func (m *Matrix[T]) SetCol(c int, values []T) error {
	if len(values) != m.raw.rows {
		return fmt.Errorf("%w: column length %d, want %d", ErrShapeMismatch, len(values), m.raw.rows)
	}
	data := m.Data()
	for r, v := range values {
		data[r*m.raw.cols+c] = v
	}
	return nil
}

// Row returns an independent copy of row n, length Cols.
func (m *Matrix[T]) Row(n int) []T {
	out := make([]T, m.raw.cols)
	copy(out, m.Data()[n*m.raw.cols:(n+1)*m.raw.cols])
	return out
}

// Col returns an independent copy of column n by strided gather, length Rows.
func (m *Matrix[T]) Col(n int) []T {
	out := make([]T, m.raw.rows)
	data := m.Data()
	for r := range out {
		out[r] = data[r*m.raw.cols+n]
	}
	return out
}

// Clone returns a deep copy with a freshly owned buffer.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{raw: m.raw.Clone()}
}

// Equal reports element-wise equality of two matrices of the same shape.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.raw.rows != other.raw.rows || m.raw.cols != other.raw.cols {
		return false
	}
	a, b := m.Data(), other.Data()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns a tab-separated projection of the matrix, one line per row.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix[%s] %dx%d", m.raw.dtype, m.raw.rows, m.raw.cols)
	for _, row := range m.RowIter() {
		sb.WriteByte('\n')
		for c, v := range row {
			if c > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	return sb.String()
}
