package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retraigo/preprocess/matrix"
)

// The reference scenario: 2 documents, 3 features.
func termFrequency(t *testing.T) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows([][]float64{{1, 0, 2}, {0, 1, 1}})
	require.NoError(t, err)
	return m
}

func TestTfIdfFit(t *testing.T) {
	tf := termFrequency(t)
	tr := NewTfIdf[float64]().Fit(tf)

	idf := tr.Idf()
	require.Len(t, idf, 3)
	assert.InDelta(t, math.Log(2.0/1.0)+1, idf[0], 1e-9)
	assert.InDelta(t, math.Log(2.0/1.0)+1, idf[1], 1e-9)
	assert.InDelta(t, math.Log(2.0/3.0)+1, idf[2], 1e-9)
}

func TestTfIdfTransform(t *testing.T) {
	tf := termFrequency(t)
	out, err := NewTfIdf[float64]().FitTransform(tf)
	require.NoError(t, err)

	want := [][]float64{
		{1.693, 0, 1.190},
		{0, 1.693, 0.595},
	}
	for r := range want {
		for c := range want[r] {
			assert.InDelta(t, want[r][c], out.At(r, c), 1e-3, "at (%d,%d)", r, c)
		}
	}

	// The input matrix is left untouched.
	assert.Equal(t, 1.0, tf.At(0, 0))
}

func TestTfIdfTransformBeforeFit(t *testing.T) {
	tf := termFrequency(t)
	_, err := NewTfIdf[float64]().Transform(tf)
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestTfIdfFloat32(t *testing.T) {
	m, err := matrix.FromRows([][]float32{{1, 0, 2}, {0, 1, 1}})
	require.NoError(t, err)

	out, err := NewTfIdf[float32]().FitTransform(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.693, float64(out.At(0, 0)), 1e-3)
	assert.InDelta(t, 0.595, float64(out.At(1, 2)), 1e-3)
}

func TestTfIdfIsTransformer(t *testing.T) {
	var _ Transformer[float64] = NewTfIdf[float64]()
}

func TestTfIdfIdfIsCopy(t *testing.T) {
	tr := NewTfIdf[float64]().Fit(termFrequency(t))
	idf := tr.Idf()
	idf[0] = 99

	out, err := tr.Transform(termFrequency(t))
	require.NoError(t, err)
	assert.InDelta(t, 1.693, out.At(0, 0), 1e-3, "mutating the returned idf must not affect the transformer")
}
