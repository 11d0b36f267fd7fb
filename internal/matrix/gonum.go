package matrix

import "gonum.org/v1/gonum/mat"

// ToDense copies the matrix into a gonum mat.Dense, converting every element
// to float64. Panics for zero extents, which gonum rejects.
func ToDense[T DType](m *Matrix[T]) *mat.Dense {
	rows, cols := m.Dims()
	out := make([]float64, rows*cols)
	for i, v := range m.Data() {
		out[i] = float64(v)
	}
	return mat.NewDense(rows, cols, out)
}

// FromDense copies a gonum matrix into a freshly owned float64 Matrix.
func FromDense(d mat.Matrix) *Matrix[float64] {
	rows, cols := d.Dims()
	m := Zeros[float64](rows, cols)
	data := m.Data()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = d.At(r, c)
		}
	}
	return m
}
