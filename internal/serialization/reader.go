package serialization

import (
	"fmt"
	"io"
	"os"

	"github.com/retraigo/preprocess/internal/matrix"
)

// Read parses a matrix container from r, copying the payload into a freshly
// owned buffer.
func Read(r io.Reader) (*matrix.RawMatrix, error) {
	var hbuf [HeaderSize]byte
	if _, err := io.ReadFull(r, hbuf[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	header, err := decodeHeader(hbuf[:])
	if err != nil {
		return nil, err
	}
	payload := make([]byte, header.payloadSize())
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrTruncated, err)
	}
	return matrix.WrapBytes(payload, header.Rows, header.Cols, header.DType)
}

// Load reads a matrix container from a file.
func Load(path string) (*matrix.RawMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
