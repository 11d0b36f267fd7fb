// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package feature provides feature-engineering utilities built on the matrix
// core: a count vectorizer turning documents into term-frequency matrices
// and a TF-IDF transformer weighting them.
//
// Example:
//
//	cv := feature.NewCountVectorizer[float64](feature.SplitTokenizer{})
//	tf, err := cv.FitTransform(docs)
//	weighted, err := feature.NewTfIdf[float64]().Fit(tf).Transform(tf)
package feature

import (
	"errors"

	"github.com/retraigo/preprocess/matrix"
)

// Float constrains the element kinds a weighting transformer can produce;
// inverse document frequencies are inherently fractional.
type Float interface {
	~float32 | ~float64
}

// ErrNotFitted is returned when Transform is invoked before Fit.
var ErrNotFitted = errors.New("feature: transformer has not been fitted")

// Transformer is a fitted matrix-to-matrix feature transformation.
type Transformer[T Float] interface {
	// Transform applies the learned transformation to x.
	Transform(x *matrix.Matrix[T]) (*matrix.Matrix[T], error)
}
