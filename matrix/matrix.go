// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the preprocess matrix core.
//
// The package re-exports the row-major, dtype-polymorphic Matrix container
// and its construction modes:
//   - Wrap / WrapRows: zero-copy adoption of an existing buffer
//   - Zeros / Full / NewRaw: zero-filled allocation
//   - FromRows: copy-and-convert from nested value rows
//   - FromMatrixLike: adoption of a {data, shape} aggregate
//
// Example:
//
//	m, err := matrix.FromRows([][]float64{{1, 0, 2}, {0, 1, 1}})
//	sums := m.RowSum() // one total per column
package matrix

import (
	"github.com/retraigo/preprocess/internal/matrix"
	"github.com/retraigo/preprocess/internal/serialization"
)

// DType is a constraint for supported matrix element types: the unsigned and
// signed integers at 8/16/32/64 bits plus float32 and float64.
type DType = matrix.DType

// DataType represents the runtime element kind of a matrix.
type DataType = matrix.DataType

// Element kind constants.
const (
	Uint8   DataType = matrix.Uint8
	Uint16  DataType = matrix.Uint16
	Uint32  DataType = matrix.Uint32
	Uint64  DataType = matrix.Uint64
	Int8    DataType = matrix.Int8
	Int16   DataType = matrix.Int16
	Int32   DataType = matrix.Int32
	Int64   DataType = matrix.Int64
	Float32 DataType = matrix.Float32
	Float64 DataType = matrix.Float64
)

// Domain identifies the arithmetic family of an element kind.
type Domain = matrix.Domain

// Arithmetic domain constants.
const (
	Bounded Domain = matrix.Bounded
	Wide    Domain = matrix.Wide
)

// Matrix is the generic row-major 2D container.
type Matrix[T DType] = matrix.Matrix[T]

// RawMatrix is the low-level runtime-typed representation.
type RawMatrix = matrix.RawMatrix

// MatrixLike is any aggregate exposing a flat buffer and its extents.
type MatrixLike[T DType] = matrix.MatrixLike[T]

// Construction and operation errors.
var (
	ErrIncompleteShape  = matrix.ErrIncompleteShape
	ErrShapeMismatch    = matrix.ErrShapeMismatch
	ErrUnsupportedInput = matrix.ErrUnsupportedInput
	ErrKindMismatch     = matrix.ErrKindMismatch
)

// Persistence errors.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrTruncated          = serialization.ErrTruncated
	ErrUnknownDType       = serialization.ErrUnknownDType
)

// DataTypeOf parses an element-kind name such as "float64".
func DataTypeOf(name string) (DataType, bool) {
	return matrix.DataTypeOf(name)
}

// Zeros creates a rows x cols matrix with a zero-filled buffer.
func Zeros[T DType](rows, cols int) *Matrix[T] {
	return matrix.Zeros[T](rows, cols)
}

// Full creates a rows x cols matrix with every element set to value.
func Full[T DType](rows, cols int, value T) *Matrix[T] {
	return matrix.Full[T](rows, cols, value)
}

// Wrap adopts an existing buffer without copying.
func Wrap[T DType](data []T, rows, cols int) (*Matrix[T], error) {
	return matrix.Wrap(data, rows, cols)
}

// WrapRows adopts an existing buffer, deriving the column count from rows.
func WrapRows[T DType](data []T, rows int) (*Matrix[T], error) {
	return matrix.WrapRows(data, rows)
}

// FromRows copies nested value rows into a freshly owned matrix.
func FromRows[T DType](rows [][]T) (*Matrix[T], error) {
	return matrix.FromRows(rows)
}

// FromMatrixLike adopts the buffer of an existing {data, shape} aggregate.
func FromMatrixLike[T DType](src MatrixLike[T]) (*Matrix[T], error) {
	return matrix.FromMatrixLike(src)
}

// New adopts a RawMatrix under the generic element type T.
func New[T DType](raw *RawMatrix) (*Matrix[T], error) {
	return matrix.New[T](raw)
}

// NewRaw creates a zero-filled RawMatrix with the given runtime kind tag.
//
// This is a low-level function. Most users should use Zeros instead.
func NewRaw(rows, cols int, dtype DataType) (*RawMatrix, error) {
	return matrix.NewRaw(rows, cols, dtype)
}

// WrapBytes adopts an existing byte buffer under a runtime kind tag.
//
// This is a low-level function. Most users should use Wrap instead.
func WrapBytes(buf []byte, rows, cols int, dtype DataType) (*RawMatrix, error) {
	return matrix.WrapBytes(buf, rows, cols, dtype)
}

// MultiplyDiags multiplies each column j of x by y[j], equivalent to
// right-multiplication by diag(y). The result preserves x's element kind.
func MultiplyDiags[T DType](x *Matrix[T], y []T) *Matrix[T] {
	return matrix.MultiplyDiags(x, y)
}
