// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package feature

import (
	"fmt"
	"strconv"

	"github.com/pkoukk/tiktoken-go"
)

// TiktokenTokenizer tokenizes with an OpenAI BPE encoding (cl100k_base,
// p50k_base, ...). Token IDs are rendered as decimal strings so the
// vocabulary machinery is shared with word-level tokenizers.
//
// Loading an encoding may fetch its BPE ranks on first use.
type TiktokenTokenizer struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTiktokenTokenizer loads the named BPE encoding, e.g. "cl100k_base".
func NewTiktokenTokenizer(encodingName string) (*TiktokenTokenizer, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	return &TiktokenTokenizer{encoding: encoding, name: encodingName}, nil
}

// NewTiktokenTokenizerForModel loads the encoding used by a model name,
// e.g. "gpt-4" or "text-embedding-ada-002".
func NewTiktokenTokenizerForModel(modelName string) (*TiktokenTokenizer, error) {
	encoding, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken for model %q: %w", modelName, err)
	}
	return &TiktokenTokenizer{encoding: encoding, name: modelName}, nil
}

// Name returns the encoding or model name the tokenizer was built from.
func (t *TiktokenTokenizer) Name() string { return t.name }

// Tokens implements Tokenizer: BPE token IDs as decimal strings.
func (t *TiktokenTokenizer) Tokens(text string) ([]string, error) {
	ids := t.encoding.Encode(text, nil, nil)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out, nil
}
