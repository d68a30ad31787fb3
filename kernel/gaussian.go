package kernel

import (
	"fmt"
	"math"
)

// Gaussian is the radial basis function (RBF) kernel
// k(x, y) = exp(-scale · ‖x−y‖₂²) with scale = 1/(2σ²).
//
// Its Gram matrix is PSD for every bandwidth.  Both sigma and the
// derived scale are epsilon-floored at construction, so sigma=0 (or any
// bandwidth small enough to zero the denominator) evaluates to a
// well-defined limit instead of raising a domain error.
type Gaussian struct {
	base
	sigma float64
	scale float64
}

// NewGaussian constructs a Gaussian kernel with bandwidth sigma.
// The Registry default is sigma=2.0.
func NewGaussian(sigma float64, opts ...Option) *Gaussian {
	s := FloorEpsilon(sigma)

	return &Gaussian{
		base:  base{name: "gaussian", cfg: newConfig(opts)},
		sigma: s,
		scale: FloorEpsilon(1.0 / (2.0 * s * s)),
	}
}

// Kind returns KindGaussian.
func (k *Gaussian) Kind() Kind { return KindGaussian }

// Sigma returns the effective (floored) bandwidth.
func (k *Gaussian) Sigma() float64 { return k.sigma }

// Scale returns the effective decay factor 1/(2σ²), strictly positive.
func (k *Gaussian) Scale() float64 { return k.scale }

// Evaluate returns exp(-scale · ‖x−y‖₂²).
func (k *Gaussian) Evaluate(x, y []float64) (float64, error) {
	if err := k.check(x, y); err != nil {
		return 0, err
	}

	return math.Exp(-k.scale * sqDist(x, y)), nil
}

// Describe returns "gaussian(sigma=S)".
func (k *Gaussian) Describe() string {
	return fmt.Sprintf("%s(sigma=%s)", k.name, formatFloat(k.sigma))
}

// String implements fmt.Stringer.
func (k *Gaussian) String() string { return k.Describe() }
