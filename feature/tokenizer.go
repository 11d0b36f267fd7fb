// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package feature

import "strings"

// Tokenizer splits a document into the terms the vectorizer counts.
type Tokenizer interface {
	// Tokens converts text into a sequence of terms.
	Tokens(text string) ([]string, error)
}

// SplitTokenizer is the default tokenizer: it lowercases the text and splits
// on Unicode whitespace. It never fails and needs no external data.
type SplitTokenizer struct{}

// Tokens implements Tokenizer.
func (SplitTokenizer) Tokens(text string) ([]string, error) {
	return strings.Fields(strings.ToLower(text)), nil
}
