package matrix

import (
	"fmt"
	"unsafe"
)

// MatrixLike is any aggregate already exposing a flat row-major buffer and
// its extents. *Matrix satisfies it, as do mapped or foreign buffers.
type MatrixLike[T DType] interface {
	Data() []T
	Dims() (rows, cols int)
}

// bytesOf reinterprets a typed slice as its backing bytes without copying.
func bytesOf[T DType](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var dummy T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(dummy)))
}

// Zeros creates a rows x cols matrix with a zero-filled buffer.
// Negative extents are a programming error and panic.
func Zeros[T DType](rows, cols int) *Matrix[T] {
	var dummy T
	raw, err := NewRaw(rows, cols, inferDataType(dummy))
	if err != nil {
		panic(err)
	}
	return &Matrix[T]{raw: raw}
}

// Full creates a rows x cols matrix with every element set to value.
func Full[T DType](rows, cols int, value T) *Matrix[T] {
	m := Zeros[T](rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = value
	}
	return m
}

// Wrap adopts an existing buffer without copying: the matrix and the caller
// share storage, and mutation through either is visible to both. The buffer
// must hold exactly rows*cols elements.
func Wrap[T DType](data []T, rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrIncompleteShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d needs %d elements, got %d",
			ErrShapeMismatch, rows, cols, rows*cols, len(data))
	}
	var dummy T
	return &Matrix[T]{raw: &RawMatrix{
		data:  bytesOf(data),
		rows:  rows,
		cols:  cols,
		dtype: inferDataType(dummy),
	}}, nil
}

// WrapRows adopts an existing buffer with the column count derived as
// len(data)/rows. A non-positive row count, or a buffer that does not divide
// evenly into rows, fails with ErrIncompleteShape.
func WrapRows[T DType](data []T, rows int) (*Matrix[T], error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: cannot derive columns for %d rows", ErrIncompleteShape, rows)
	}
	if len(data)%rows != 0 {
		return nil, fmt.Errorf("%w: %d elements do not divide into %d rows",
			ErrIncompleteShape, len(data), rows)
	}
	return Wrap(data, rows, len(data)/rows)
}

// FromRows copies nested value rows into a freshly owned buffer.
// All rows must have equal length; the row set must be non-empty, since the
// column count cannot be derived from zero rows.
func FromRows[T DType](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows to derive columns from", ErrIncompleteShape)
	}
	cols := len(rows[0])
	m := Zeros[T](len(rows), cols)
	data := m.Data()
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d",
				ErrShapeMismatch, i, len(row), cols)
		}
		copy(data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// FromMatrixLike adopts the buffer of an existing {data, shape} aggregate,
// with the same zero-copy semantics as Wrap.
func FromMatrixLike[T DType](src MatrixLike[T]) (*Matrix[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil aggregate", ErrUnsupportedInput)
	}
	rows, cols := src.Dims()
	return Wrap(src.Data(), rows, cols)
}
