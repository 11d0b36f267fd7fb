package serialization

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/retraigo/preprocess/internal/matrix"
)

// Write streams the matrix container to w: fixed header, then the raw
// row-major payload.
func Write(w io.Writer, raw *matrix.RawMatrix) error {
	header := encodeHeader(raw)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(raw.Data()); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// Save writes the matrix container to a file, replacing any existing file.
func Save(path string, raw *matrix.RawMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, raw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return f.Close()
}
