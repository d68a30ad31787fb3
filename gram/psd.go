package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlkern/kernel"
)

// DefaultTol is the eigenvalue tolerance used by the PSD checks: a
// matrix passes when every eigenvalue is ≥ -DefaultTol, absorbing the
// rounding noise an exact-arithmetic-PSD Gram matrix accumulates during
// assembly and decomposition.
const DefaultTol = 1e-10

// IsPSD reports whether sym is positive semi-definite within tol: all
// eigenvalues of sym must be ≥ -tol.  A tol ≤ 0 falls back to
// DefaultTol.  Returns ErrEigenFailed if the decomposition does not
// converge.
func IsPSD(sym mat.Symmetric, tol float64) (bool, error) {
	minEig, err := MinEigenvalue(sym)
	if err != nil {
		return false, err
	}
	if tol <= 0 {
		tol = DefaultTol
	}

	return minEig >= -tol, nil
}

// MinEigenvalue returns the smallest eigenvalue of sym — the detail the
// IsPSD boolean hides, useful when diagnosing a near-miss.
func MinEigenvalue(sym mat.Symmetric) (float64, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return 0, ErrEigenFailed
	}

	// EigenSym returns eigenvalues in ascending order.
	return eig.Values(nil)[0], nil
}

// IsPSD certifies the assembled matrix; see the package-level IsPSD.
func (m *Matrix) IsPSD(tol float64) (bool, error) {
	return IsPSD(m.sym, tol)
}

// CertifyKernel is the kernel self-diagnostic: it assembles k's Gram
// matrix over samples and certifies the PSD property.  It is a test and
// verification hook — never invoked implicitly on evaluation.
//
// Linear, Polynomial (positive integer degree, intercept ≥ 0), Gaussian
// and Laplacian (gamma > 0) kernels must pass for any sample set;
// Sigmoid carries no such guarantee and may legitimately fail.
func CertifyKernel(k kernel.Function, samples [][]float64, opts *Options, tol float64) (bool, error) {
	m, err := Assemble(k, samples, opts)
	if err != nil {
		return false, err
	}

	return m.IsPSD(tol)
}
