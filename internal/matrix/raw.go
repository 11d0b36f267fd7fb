package matrix

import (
	"fmt"
	"unsafe"
)

// RawMatrix is the low-level, runtime-typed matrix representation: a single
// flat byte buffer in row-major order plus its extents and element kind.
// Element (r, c) lives at flat offset r*cols + c.
//
// A RawMatrix exclusively owns its buffer unless it was created by WrapBytes,
// in which case it adopts the caller's buffer without copying.
type RawMatrix struct {
	data  []byte
	rows  int
	cols  int
	dtype DataType
}

// NewRaw creates a RawMatrix with a zero-filled buffer of rows*cols elements.
// Zero extents are valid (an empty matrix keeps its column count); negative
// extents fail with ErrIncompleteShape.
func NewRaw(rows, cols int, dtype DataType) (*RawMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrIncompleteShape, rows, cols)
	}
	return &RawMatrix{
		data:  make([]byte, rows*cols*dtype.Size()),
		rows:  rows,
		cols:  cols,
		dtype: dtype,
	}, nil
}

// WrapBytes adopts an existing byte buffer without copying. The buffer must
// hold exactly rows*cols elements of the given kind.
func WrapBytes(buf []byte, rows, cols int, dtype DataType) (*RawMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrIncompleteShape, rows, cols)
	}
	size := dtype.Size()
	if len(buf)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %s elements",
			ErrUnsupportedInput, len(buf), dtype)
	}
	if len(buf) != rows*cols*size {
		return nil, fmt.Errorf("%w: %dx%d %s needs %d bytes, got %d",
			ErrShapeMismatch, rows, cols, dtype, rows*cols*size, len(buf))
	}
	return &RawMatrix{data: buf, rows: rows, cols: cols, dtype: dtype}, nil
}

// Rows returns the number of rows.
func (r *RawMatrix) Rows() int { return r.rows }

// Cols returns the number of columns.
func (r *RawMatrix) Cols() int { return r.cols }

// Dims returns both extents.
func (r *RawMatrix) Dims() (rows, cols int) { return r.rows, r.cols }

// DType returns the element kind tag.
func (r *RawMatrix) DType() DataType { return r.dtype }

// NumElements returns the total number of elements.
func (r *RawMatrix) NumElements() int { return r.rows * r.cols }

// ByteSize returns the buffer size in bytes.
func (r *RawMatrix) ByteSize() int { return r.NumElements() * r.dtype.Size() }

// Data returns the raw byte buffer.
// WARNING: direct access to the underlying memory. Use with caution.
func (r *RawMatrix) Data() []byte { return r.data }

// String returns a short description of the matrix.
func (r *RawMatrix) String() string {
	return fmt.Sprintf("RawMatrix[%s] %dx%d", r.dtype, r.rows, r.cols)
}

func rawSlice[T DType](r *RawMatrix, want DataType) []T {
	if r.dtype != want {
		panic(fmt.Sprintf("matrix element kind is %s, not %s", r.dtype, want))
	}
	if r.NumElements() == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsUint8 interprets the buffer as []uint8.
// Panics if the element kind is not uint8.
func (r *RawMatrix) AsUint8() []uint8 { return rawSlice[uint8](r, Uint8) }

// AsUint16 interprets the buffer as []uint16.
// Panics if the element kind is not uint16.
func (r *RawMatrix) AsUint16() []uint16 { return rawSlice[uint16](r, Uint16) }

// AsUint32 interprets the buffer as []uint32.
// Panics if the element kind is not uint32.
func (r *RawMatrix) AsUint32() []uint32 { return rawSlice[uint32](r, Uint32) }

// AsUint64 interprets the buffer as []uint64.
// Panics if the element kind is not uint64.
func (r *RawMatrix) AsUint64() []uint64 { return rawSlice[uint64](r, Uint64) }

// AsInt8 interprets the buffer as []int8.
// Panics if the element kind is not int8.
func (r *RawMatrix) AsInt8() []int8 { return rawSlice[int8](r, Int8) }

// AsInt16 interprets the buffer as []int16.
// Panics if the element kind is not int16.
func (r *RawMatrix) AsInt16() []int16 { return rawSlice[int16](r, Int16) }

// AsInt32 interprets the buffer as []int32.
// Panics if the element kind is not int32.
func (r *RawMatrix) AsInt32() []int32 { return rawSlice[int32](r, Int32) }

// AsInt64 interprets the buffer as []int64.
// Panics if the element kind is not int64.
func (r *RawMatrix) AsInt64() []int64 { return rawSlice[int64](r, Int64) }

// AsFloat32 interprets the buffer as []float32.
// Panics if the element kind is not float32.
func (r *RawMatrix) AsFloat32() []float32 { return rawSlice[float32](r, Float32) }

// AsFloat64 interprets the buffer as []float64.
// Panics if the element kind is not float64.
func (r *RawMatrix) AsFloat64() []float64 { return rawSlice[float64](r, Float64) }

// Clone returns a deep copy with a freshly owned buffer.
func (r *RawMatrix) Clone() *RawMatrix {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawMatrix{data: data, rows: r.rows, cols: r.cols, dtype: r.dtype}
}
