package kernel

import (
	"fmt"
	"math"
)

// Laplacian is the kernel k(x, y) = exp(-γ · Σ|x−y|) over the L1
// (Manhattan) distance.
//
// Its Gram matrix is PSD for every γ > 0.  γ is not validated at
// construction: non-positive values are accepted and simply void the
// guarantee.
type Laplacian struct {
	base
	gamma float64
}

// NewLaplacian constructs a Laplacian kernel with scale factor gamma.
// The Registry default is gamma=1.0.
func NewLaplacian(gamma float64, opts ...Option) *Laplacian {
	return &Laplacian{
		base:  base{name: "laplacian", cfg: newConfig(opts)},
		gamma: gamma,
	}
}

// Kind returns KindLaplacian.
func (k *Laplacian) Kind() Kind { return KindLaplacian }

// Gamma returns the configured scale factor.
func (k *Laplacian) Gamma() float64 { return k.gamma }

// Evaluate returns exp(-γ · Σ|x−y|).
func (k *Laplacian) Evaluate(x, y []float64) (float64, error) {
	if err := k.check(x, y); err != nil {
		return 0, err
	}

	return math.Exp(-k.gamma * l1Dist(x, y)), nil
}

// Describe returns "laplacian(gamma=G)".
func (k *Laplacian) Describe() string {
	return fmt.Sprintf("%s(gamma=%s)", k.name, formatFloat(k.gamma))
}

// String implements fmt.Stringer.
func (k *Laplacian) String() string { return k.Describe() }
