package gram

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlkern/kernel"
)

// Options configures Gram matrix assembly.
//
// Fields:
//   - Workers — upper bound on concurrent row computations.
//     A value ≤ 0 means GOMAXPROCS.
type Options struct {
	Workers int
}

// DefaultOptions returns assembly options with Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Matrix is an assembled Gram matrix: the kernel's identity, the sample
// count, and the symmetric value matrix.  It is immutable once returned
// by Assemble and safe for concurrent reads.
type Matrix struct {
	kernel string
	n      int
	sym    *mat.SymDense
}

// Dim returns N, the number of samples (matrix order).
func (m *Matrix) Dim() int { return m.n }

// Kernel returns the Describe() form of the kernel that produced m.
func (m *Matrix) Kernel() string { return m.kernel }

// At returns G[i][j].  Indices out of [0, Dim) panic, matching gonum
// matrix access semantics.
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Sym exposes the backing symmetric matrix for direct use with gonum
// routines.  Treat it as read-only: mutating it breaks the Matrix
// immutability contract.
func (m *Matrix) Sym() *mat.SymDense { return m.sym }

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	return fmt.Sprintf("gram(kernel=%s,n=%d)", m.kernel, m.n)
}

// Assemble builds the N×N Gram matrix of k over the sample rows.
//
// Only the upper triangle is computed — G[j][i] = G[i][j] is guaranteed
// by the kernel symmetry contract — and rows are fanned out across a
// bounded worker pool.  Pairwise evaluations are independent and
// stateless, so no ordering between pairs is required.
//
// Assembly evaluates k with the checks the instance was constructed
// with; shape validation of the sample set itself (non-empty,
// rectangular) happens up front.  Returns ErrNilKernel, ErrNoSamples,
// ErrEmptySample, ErrRaggedSamples, or the first evaluation error.
//
// Complexity: O(N²·d) kernel work, O(N²) memory.
func Assemble(k kernel.Function, samples [][]float64, opts *Options) (*Matrix, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	n := len(samples)
	if n == 0 {
		return nil, ErrNoSamples
	}
	d := len(samples[0])
	if d == 0 {
		return nil, ErrEmptySample
	}
	for i, s := range samples {
		if len(s) != d {
			return nil, fmt.Errorf("%w: sample 0 has %d features, sample %d has %d",
				ErrRaggedSamples, d, i, len(s))
		}
	}

	workers := DefaultOptions().Workers
	if opts != nil && opts.Workers > 0 {
		workers = opts.Workers
	}

	sym := mat.NewSymDense(n, nil)

	// One task per row of the upper triangle; distinct (i,j) cells per
	// task, so unsynchronized writes into sym are safe.
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			for j := i; j < n; j++ {
				v, err := k.Evaluate(samples[i], samples[j])
				if err != nil {
					return fmt.Errorf("gram: evaluating pair (%d,%d): %w", i, j, err)
				}
				sym.SetSym(i, j, v)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Matrix{kernel: k.Describe(), n: n, sym: sym}, nil
}
