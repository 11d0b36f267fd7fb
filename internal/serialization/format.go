// Package serialization implements the binary container format for
// persisting a single matrix.
//
// Layout (little-endian):
//
//	offset 0x00  magic "PREP" (4 bytes)
//	offset 0x04  format version (uint32)
//	offset 0x08  element kind tag (uint8) + 3 reserved bytes
//	offset 0x0C  rows (uint64)
//	offset 0x14  cols (uint64)
//	offset 0x1C  payload: rows*cols elements, row-major, native width
//
// The element kind tags on the wire are the matrix.DataType values and are
// frozen: new kinds may only be appended.
package serialization

import (
	"encoding/binary"
	"fmt"

	"github.com/retraigo/preprocess/internal/matrix"
)

const (
	// MagicBytes identifies a preprocess matrix file.
	MagicBytes = "PREP"

	// FormatVersion is the current container version.
	FormatVersion uint32 = 1

	// HeaderSize is the fixed byte length of the header.
	HeaderSize = 28
)

// Header carries the decoded file header.
type Header struct {
	Version uint32
	DType   matrix.DataType
	Rows    int
	Cols    int
}

// encodeHeader renders a header for the given matrix metadata.
func encodeHeader(raw *matrix.RawMatrix) [HeaderSize]byte {
	var h [HeaderSize]byte
	copy(h[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(h[4:8], FormatVersion)
	h[8] = uint8(raw.DType())
	binary.LittleEndian.PutUint64(h[12:20], uint64(raw.Rows()))
	binary.LittleEndian.PutUint64(h[20:28], uint64(raw.Cols()))
	return h
}

// decodeHeader parses and validates the fixed header.
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d header bytes, need %d", ErrTruncated, len(buf), HeaderSize)
	}
	if string(buf[0:4]) != MagicBytes {
		return Header{}, ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(buf[4:8])
	if version != FormatVersion {
		return Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}
	tag := matrix.DataType(buf[8])
	if tag < matrix.Uint8 || tag > matrix.Float64 {
		return Header{}, fmt.Errorf("%w: tag %d", ErrUnknownDType, buf[8])
	}
	rows := binary.LittleEndian.Uint64(buf[12:20])
	cols := binary.LittleEndian.Uint64(buf[20:28])
	const maxInt = uint64(^uint(0) >> 1)
	if rows > maxInt || cols > maxInt {
		return Header{}, fmt.Errorf("%w: extents %dx%d overflow int", ErrTruncated, rows, cols)
	}
	// The declared payload byte size must fit in an int as well, or a
	// crafted header could wrap rows*cols*size around zero.
	if rows != 0 && cols > maxInt/rows {
		return Header{}, fmt.Errorf("%w: extents %dx%d overflow int", ErrTruncated, rows, cols)
	}
	if size := uint64(tag.Size()); rows*cols > maxInt/size {
		return Header{}, fmt.Errorf("%w: %dx%d %s payload overflows int", ErrTruncated, rows, cols, tag)
	}
	return Header{Version: version, DType: tag, Rows: int(rows), Cols: int(cols)}, nil
}

// payloadSize returns the expected byte length of the payload.
func (h Header) payloadSize() int {
	return h.Rows * h.Cols * h.DType.Size()
}
