// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/retraigo/preprocess/internal/matrix"
)

// ToDense copies the matrix into a gonum mat.Dense, converting every element
// to float64. Panics for zero extents, which gonum rejects.
func ToDense[T DType](m *Matrix[T]) *mat.Dense {
	return matrix.ToDense(m)
}

// FromDense copies a gonum matrix into a freshly owned float64 Matrix.
func FromDense(d mat.Matrix) *Matrix[float64] {
	return matrix.FromDense(d)
}
