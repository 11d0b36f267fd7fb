// Copyright 2025 The preprocess authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package matrix

import (
	"io"

	"github.com/retraigo/preprocess/internal/serialization"
)

// Save writes the matrix to a file in the preprocess container format.
func Save[T DType](path string, m *Matrix[T]) error {
	return serialization.Save(path, m.Raw())
}

// Write streams the matrix container to w.
func Write[T DType](w io.Writer, m *Matrix[T]) error {
	return serialization.Write(w, m.Raw())
}

// Load reads a matrix from a file, copying the payload into a freshly owned
// buffer. Fails with ErrKindMismatch if the file's element kind is not T.
func Load[T DType](path string) (*Matrix[T], error) {
	raw, err := serialization.Load(path)
	if err != nil {
		return nil, err
	}
	return New[T](raw)
}

// Read parses a matrix container from r.
func Read[T DType](r io.Reader) (*Matrix[T], error) {
	raw, err := serialization.Read(r)
	if err != nil {
		return nil, err
	}
	return New[T](raw)
}

// Mapped is a matrix backed by a read-only memory-mapped file. The matrix
// aliases the mapped region (the zero-copy Wrap path): it must not be
// mutated, and it is valid only until Close.
type Mapped[T DType] struct {
	m *Matrix[T]
	r *serialization.MmapReader
}

// OpenMapped memory-maps a matrix file for zero-copy read access.
// Always call Close when done (use defer).
func OpenMapped[T DType](path string) (*Mapped[T], error) {
	r, err := serialization.NewMmapReader(path)
	if err != nil {
		return nil, err
	}
	m, err := New[T](r.Raw())
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	return &Mapped[T]{m: m, r: r}, nil
}

// Matrix returns the mapped matrix.
func (mp *Mapped[T]) Matrix() *Matrix[T] { return mp.m }

// Close unmaps the file. The matrix must not be used afterwards.
func (mp *Mapped[T]) Close() error {
	mp.m = nil
	return mp.r.Close()
}
