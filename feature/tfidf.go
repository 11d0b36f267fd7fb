// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package feature

import (
	"math"

	"github.com/retraigo/preprocess/matrix"
)

// TfIdfTransformer weights a term-frequency matrix (rows are documents,
// columns are features) by inverse document frequency.
//
// Fit derives one frequency per feature as the total of its term counts
// across all documents (not the count of documents containing it). The idf
// for feature j is then ln(nDocs/freq[j]) + 1. Transform scales each column
// by its idf via MultiplyDiags.
type TfIdfTransformer[T Float] struct {
	idf []T
}

// NewTfIdf creates an unfitted TF-IDF transformer.
func NewTfIdf[T Float]() *TfIdfTransformer[T] {
	return &TfIdfTransformer[T]{}
}

// Fit learns the idf vector from a term-frequency matrix and returns the
// receiver for chaining.
func (t *TfIdfTransformer[T]) Fit(x *matrix.Matrix[T]) *TfIdfTransformer[T] {
	freq := x.RowSum()
	docs := float64(x.Rows())
	idf := make([]T, len(freq))
	for j, f := range freq {
		idf[j] = T(math.Log(docs/float64(f)) + 1)
	}
	t.idf = idf
	return t
}

// Transform scales each column of x by its learned idf. The result has x's
// shape and element kind. Fails with ErrNotFitted before Fit.
func (t *TfIdfTransformer[T]) Transform(x *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if t.idf == nil {
		return nil, ErrNotFitted
	}
	return matrix.MultiplyDiags(x, t.idf), nil
}

// FitTransform fits on x and immediately transforms it.
func (t *TfIdfTransformer[T]) FitTransform(x *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return t.Fit(x).Transform(x)
}

// Idf returns a copy of the learned idf vector, or nil before Fit.
func (t *TfIdfTransformer[T]) Idf() []T {
	if t.idf == nil {
		return nil
	}
	out := make([]T, len(t.idf))
	copy(out, t.idf)
	return out
}
