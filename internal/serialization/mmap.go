package serialization

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/retraigo/preprocess/internal/matrix"
)

// MmapReader provides zero-copy, memory-mapped access to a matrix container.
// The wrapped matrix aliases the read-only mapped region: it must not be
// mutated, and it is valid only until Close.
//
// Always call Close when done to unmap the file (use defer).
type MmapReader struct {
	file   *os.File
	data   mmap.MMap
	header Header
	raw    *matrix.RawMatrix
	closed bool
}

// NewMmapReader opens path read-only and maps the payload in place.
func NewMmapReader(path string) (*MmapReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	r := &MmapReader{file: f, data: data}
	if err := r.parse(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

func (r *MmapReader) parse() error {
	header, err := decodeHeader(r.data)
	if err != nil {
		return err
	}
	end := HeaderSize + header.payloadSize()
	if end > len(r.data) {
		return fmt.Errorf("%w: payload needs %d bytes, file has %d after header",
			ErrTruncated, header.payloadSize(), len(r.data)-HeaderSize)
	}
	raw, err := matrix.WrapBytes(r.data[HeaderSize:end], header.Rows, header.Cols, header.DType)
	if err != nil {
		return err
	}
	r.header = header
	r.raw = raw
	return nil
}

// Header returns the decoded file header.
func (r *MmapReader) Header() Header { return r.header }

// Raw returns the matrix wrapping the mapped region.
// WARNING: the buffer is read-only; writing through it is a hard fault.
func (r *MmapReader) Raw() *matrix.RawMatrix { return r.raw }

// Close unmaps and closes the file. The wrapped matrix must not be used
// afterwards.
func (r *MmapReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.raw = nil

	var err error
	if r.data != nil {
		err = r.data.Unmap()
		r.data = nil
	}
	if closeErr := r.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
