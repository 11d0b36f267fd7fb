package matrix

import (
	"errors"
	"testing"
)

func TestZerosAndFull(t *testing.T) {
	z := Zeros[float64](2, 2)
	for i, v := range z.Data() {
		if v != 0 {
			t.Errorf("Zeros element %d = %v, want 0", i, v)
		}
	}

	f := Full[int32](2, 3, -7)
	for i, v := range f.Data() {
		if v != -7 {
			t.Errorf("Full element %d = %v, want -7", i, v)
		}
	}
}

func TestWrapSharesBuffer(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6}
	m, err := Wrap(buf, 2, 3)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("extents = %dx%d, want 2x3", m.Rows(), m.Cols())
	}

	// Wrap adopts, never copies: both sides see mutation.
	m.Set(0, 1, 42)
	if buf[1] != 42 {
		t.Error("mutation through the matrix did not reach the wrapped buffer")
	}
	buf[5] = -1
	if m.At(1, 2) != -1 {
		t.Error("mutation of the wrapped buffer did not reach the matrix")
	}
}

func TestWrapErrors(t *testing.T) {
	if _, err := Wrap([]float64{1, 2, 3}, 2, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Wrap length mismatch error = %v, want ErrShapeMismatch", err)
	}
	if _, err := Wrap([]float64{1, 2}, -1, 2); !errors.Is(err, ErrIncompleteShape) {
		t.Errorf("Wrap negative extent error = %v, want ErrIncompleteShape", err)
	}
}

func TestWrapRowsDerivesColumns(t *testing.T) {
	m, err := WrapRows([]int16{1, 2, 3, 4, 5, 6}, 2)
	if err != nil {
		t.Fatalf("WrapRows failed: %v", err)
	}
	if m.Cols() != 3 {
		t.Errorf("derived columns = %d, want 3", m.Cols())
	}

	if _, err := WrapRows([]int16{1, 2, 3, 4, 5}, 2); !errors.Is(err, ErrIncompleteShape) {
		t.Errorf("uneven buffer error = %v, want ErrIncompleteShape", err)
	}
	if _, err := WrapRows([]int16{1, 2}, 0); !errors.Is(err, ErrIncompleteShape) {
		t.Errorf("zero rows error = %v, want ErrIncompleteShape", err)
	}
}

func TestFromRowsCopies(t *testing.T) {
	src := [][]uint8{{1, 2}, {3, 4}}
	m, err := FromRows(src)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if m.At(1, 0) != 3 {
		t.Errorf("At(1,0) = %d, want 3", m.At(1, 0))
	}

	// Convert mode copies: the source rows stay independent.
	src[1][0] = 9
	if m.At(1, 0) != 3 {
		t.Error("FromRows aliased the source rows; expected a copy")
	}
}

func TestFromRowsErrors(t *testing.T) {
	if _, err := FromRows([][]float32{}); !errors.Is(err, ErrIncompleteShape) {
		t.Errorf("empty rows error = %v, want ErrIncompleteShape", err)
	}
	if _, err := FromRows([][]float32{{1, 2}, {3}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("ragged rows error = %v, want ErrShapeMismatch", err)
	}
}

func TestFromMatrixLike(t *testing.T) {
	src, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	m, err := FromMatrixLike[float64](src)
	if err != nil {
		t.Fatalf("FromMatrixLike failed: %v", err)
	}

	// Pass-through adopts the aggregate's buffer like Wrap.
	m.Set(0, 0, 42)
	if src.At(0, 0) != 42 {
		t.Error("FromMatrixLike copied the buffer; expected adoption")
	}

	if _, err := FromMatrixLike[float64](nil); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("nil aggregate error = %v, want ErrUnsupportedInput", err)
	}
}

func TestNewChecksKind(t *testing.T) {
	raw, err := NewRaw(1, 1, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if _, err := New[float64](raw); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("New with wrong kind error = %v, want ErrKindMismatch", err)
	}
	if _, err := New[float32](raw); err != nil {
		t.Errorf("New with matching kind failed: %v", err)
	}
}
