package serialization

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retraigo/preprocess/internal/matrix"
)

func sampleRaw(t *testing.T) *matrix.RawMatrix {
	t.Helper()
	raw, err := matrix.NewRaw(2, 3, matrix.Float64)
	require.NoError(t, err)
	data := raw.AsFloat64()
	for i := range data {
		data[i] = float64(i) + 0.5
	}
	return raw
}

func TestWriteReadRoundTrip(t *testing.T) {
	raw := sampleRaw(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, raw))
	assert.Equal(t, HeaderSize+raw.ByteSize(), buf.Len())

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, matrix.Float64, got.DType())
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, 3, got.Cols())
	assert.Equal(t, raw.AsFloat64(), got.AsFloat64())
}

func TestSaveLoad(t *testing.T) {
	raw := sampleRaw(t)
	path := filepath.Join(t.TempDir(), "m.prep")

	require.NoError(t, Save(path, raw))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, raw.AsFloat64(), got.AsFloat64())
}

func TestReadInvalidMagic(t *testing.T) {
	data := make([]byte, HeaderSize)
	copy(data, "NOPE")
	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadUnsupportedVersion(t *testing.T) {
	raw := sampleRaw(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, raw))

	data := buf.Bytes()
	data[4] = 99
	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestReadUnknownDType(t *testing.T) {
	raw := sampleRaw(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, raw))

	data := buf.Bytes()
	data[8] = 200
	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnknownDType)
}

func TestReadTruncated(t *testing.T) {
	raw := sampleRaw(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, raw))

	_, err := Read(bytes.NewReader(buf.Bytes()[:HeaderSize+7]))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = Read(bytes.NewReader(buf.Bytes()[:10]))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadOversizedExtents(t *testing.T) {
	craft := func(rows, cols uint64) []byte {
		h := make([]byte, HeaderSize)
		copy(h, MagicBytes)
		binary.LittleEndian.PutUint32(h[4:8], FormatVersion)
		h[8] = uint8(matrix.Float64)
		binary.LittleEndian.PutUint64(h[12:20], rows)
		binary.LittleEndian.PutUint64(h[20:28], cols)
		return h
	}

	// rows*cols*size wraps negative (1<<30 * 1<<30 * 8 = 1<<63).
	_, err := Read(bytes.NewReader(craft(1<<30, 1<<30)))
	assert.ErrorIs(t, err, ErrTruncated)

	// rows*cols wraps all the way to zero.
	_, err = Read(bytes.NewReader(craft(1<<62, 1<<62)))
	assert.ErrorIs(t, err, ErrTruncated)

	// Either extent alone above maxInt.
	_, err = Read(bytes.NewReader(craft(1<<63, 1)))
	assert.ErrorIs(t, err, ErrTruncated)

	// The mmap path rejects the same headers instead of slicing past the
	// mapped region.
	path := filepath.Join(t.TempDir(), "huge.prep")
	require.NoError(t, os.WriteFile(path, craft(1<<30, 1<<30), 0o600))
	_, err = NewMmapReader(path)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestMmapReader(t *testing.T) {
	raw := sampleRaw(t)
	path := filepath.Join(t.TempDir(), "m.prep")
	require.NoError(t, Save(path, raw))

	r, err := NewMmapReader(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, matrix.Float64, r.Header().DType)
	assert.Equal(t, 2, r.Header().Rows)
	assert.Equal(t, 3, r.Header().Cols)
	assert.Equal(t, raw.AsFloat64(), r.Raw().AsFloat64())

	require.NoError(t, r.Close())
	assert.NoError(t, r.Close(), "double close should be a no-op")
}

func TestMmapReaderTruncated(t *testing.T) {
	raw := sampleRaw(t)
	path := filepath.Join(t.TempDir(), "m.prep")
	require.NoError(t, Save(path, raw))

	full, err := os.ReadFile(path)
	require.NoError(t, err)
	short := filepath.Join(t.TempDir(), "short.prep")
	require.NoError(t, os.WriteFile(short, full[:len(full)-8], 0o600))

	_, err = NewMmapReader(short)
	assert.ErrorIs(t, err, ErrTruncated)
}
