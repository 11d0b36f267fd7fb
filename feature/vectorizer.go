// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package feature

import (
	"fmt"
	"sort"

	"github.com/retraigo/preprocess/matrix"
)

// CountVectorizer turns documents into a term-frequency matrix: one row per
// document, one column per vocabulary term. The vocabulary is learned by Fit
// and ordered lexicographically so column positions are deterministic.
type CountVectorizer[T Float] struct {
	tokenizer Tokenizer
	vocab     map[string]int
	terms     []string
}

// NewCountVectorizer creates an unfitted vectorizer over the given tokenizer.
func NewCountVectorizer[T Float](tok Tokenizer) *CountVectorizer[T] {
	return &CountVectorizer[T]{tokenizer: tok}
}

// Fit learns the vocabulary from docs and returns the receiver for chaining.
func (cv *CountVectorizer[T]) Fit(docs []string) (*CountVectorizer[T], error) {
	seen := make(map[string]struct{})
	for i, doc := range docs {
		tokens, err := cv.tokenizer.Tokens(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to tokenize document %d: %w", i, err)
		}
		for _, tok := range tokens {
			seen[tok] = struct{}{}
		}
	}
	terms := make([]string, 0, len(seen))
	for tok := range seen {
		terms = append(terms, tok)
	}
	sort.Strings(terms)
	vocab := make(map[string]int, len(terms))
	for j, tok := range terms {
		vocab[tok] = j
	}
	cv.terms = terms
	cv.vocab = vocab
	return cv, nil
}

// Transform counts the learned terms in each document. The result has shape
// len(docs) x len(Vocabulary); terms outside the vocabulary are ignored.
// Fails with ErrNotFitted before Fit.
func (cv *CountVectorizer[T]) Transform(docs []string) (*matrix.Matrix[T], error) {
	if cv.vocab == nil {
		return nil, ErrNotFitted
	}
	m := matrix.Zeros[T](len(docs), len(cv.terms))
	for i, doc := range docs {
		tokens, err := cv.tokenizer.Tokens(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to tokenize document %d: %w", i, err)
		}
		for _, tok := range tokens {
			if j, ok := cv.vocab[tok]; ok {
				m.SetAdd(i, j, 1)
			}
		}
	}
	return m, nil
}

// FitTransform fits on docs and immediately transforms them.
func (cv *CountVectorizer[T]) FitTransform(docs []string) (*matrix.Matrix[T], error) {
	if _, err := cv.Fit(docs); err != nil {
		return nil, err
	}
	return cv.Transform(docs)
}

// Vocabulary returns the learned terms in column order, or nil before Fit.
func (cv *CountVectorizer[T]) Vocabulary() []string {
	if cv.terms == nil {
		return nil
	}
	out := make([]string, len(cv.terms))
	copy(out, cv.terms)
	return out
}
