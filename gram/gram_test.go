package gram_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlkern/gram"
	"github.com/katalvlaran/lvlkern/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randSamples returns n rows of dim uniform features in [0, 1).
func randSamples(rng *rand.Rand, n, dim int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, dim)
		for j := range row {
			row[j] = rng.Float64()
		}
		out[i] = row
	}

	return out
}

// TestAssemble_InputValidation covers the up-front sample-set checks.
func TestAssemble_InputValidation(t *testing.T) {
	_, err := gram.Assemble(nil, [][]float64{{1}}, nil)
	assert.ErrorIs(t, err, gram.ErrNilKernel)

	_, err = gram.Assemble(kernel.NewLinear(), nil, nil)
	assert.ErrorIs(t, err, gram.ErrNoSamples)

	_, err = gram.Assemble(kernel.NewLinear(), [][]float64{{}}, nil)
	assert.ErrorIs(t, err, gram.ErrEmptySample)

	_, err = gram.Assemble(kernel.NewLinear(), [][]float64{{1, 2}, {1}}, nil)
	assert.ErrorIs(t, err, gram.ErrRaggedSamples)
}

// TestAssemble_ValuesAndSymmetry checks every cell against a direct
// evaluation and confirms the mirrored triangle.
func TestAssemble_ValuesAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	samples := randSamples(rng, 12, 5)
	k := kernel.NewGaussian(1)

	m, err := gram.Assemble(k, samples, nil)
	require.NoError(t, err)
	require.Equal(t, 12, m.Dim())
	assert.Equal(t, k.Describe(), m.Kernel())

	for i := 0; i < m.Dim(); i++ {
		for j := 0; j < m.Dim(); j++ {
			want, err := k.Evaluate(samples[i], samples[j])
			require.NoError(t, err)
			assert.Equal(t, want, m.At(i, j), "cell (%d,%d)", i, j)
			assert.Equal(t, m.At(j, i), m.At(i, j), "matrix must be symmetric")
		}
	}
}

// TestAssemble_ParallelMatchesSerial pins the worker fan-out to the
// single-worker result: pairwise evaluations are independent, so the
// schedule must not change any value.
func TestAssemble_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	samples := randSamples(rng, 25, 7)
	k := kernel.NewLaplacian(0.5)

	serial, err := gram.Assemble(k, samples, &gram.Options{Workers: 1})
	require.NoError(t, err)
	parallel, err := gram.Assemble(k, samples, &gram.Options{Workers: 8})
	require.NoError(t, err)

	for i := 0; i < serial.Dim(); i++ {
		for j := 0; j < serial.Dim(); j++ {
			assert.Equal(t, serial.At(i, j), parallel.At(i, j), "cell (%d,%d)", i, j)
		}
	}
}

// errBroken is the sentinel a deliberately broken kernel returns.
var errBroken = errors.New("broken kernel")

// brokenKernel satisfies kernel.Function but fails every evaluation,
// exercising the error-propagation path of Assemble.
type brokenKernel struct{}

func (brokenKernel) Name() string      { return "broken" }
func (brokenKernel) Kind() kernel.Kind { return kernel.KindCustom }
func (brokenKernel) Describe() string  { return "broken" }
func (brokenKernel) Evaluate(x, y []float64) (float64, error) {
	return 0, errBroken
}

// TestAssemble_PropagatesEvaluationError ensures a failing kernel
// surfaces its error instead of a partial matrix.
func TestAssemble_PropagatesEvaluationError(t *testing.T) {
	_, err := gram.Assemble(brokenKernel{}, [][]float64{{1}, {2}}, nil)
	require.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "pair", "error must carry the failing pair context")
}

// TestMatrix_String pins the Stringer form.
func TestMatrix_String(t *testing.T) {
	m, err := gram.Assemble(kernel.NewLinear(), [][]float64{{1, 0}, {0, 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gram(kernel=linear,n=2)", m.String())
}
