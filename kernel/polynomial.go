package kernel

import (
	"fmt"
	"math"
)

// Polynomial is the kernel k(x, y) = (b + x·y)^degree.
//
// The Gram matrix is PSD when degree is a positive integer and the
// intercept b is non-negative.  Neither constraint is enforced at
// construction: any degree and intercept are accepted, and only the
// documented combinations carry the PSD guarantee.
//
// Polynomial(degree=1, b=0) coincides exactly with Linear.
type Polynomial struct {
	base
	degree int
	b      float64
}

// NewPolynomial constructs a Polynomial kernel of the given degree and
// intercept b.  The Registry default is degree=2, b=0.
func NewPolynomial(degree int, b float64, opts ...Option) *Polynomial {
	return &Polynomial{
		base:   base{name: "polynomial", cfg: newConfig(opts)},
		degree: degree,
		b:      b,
	}
}

// Kind returns KindPolynomial.
func (k *Polynomial) Kind() Kind { return KindPolynomial }

// Degree returns the configured exponent.
func (k *Polynomial) Degree() int { return k.degree }

// Intercept returns the configured intercept b.
func (k *Polynomial) Intercept() float64 { return k.b }

// Evaluate returns (b + x·y)^degree.
func (k *Polynomial) Evaluate(x, y []float64) (float64, error) {
	if err := k.check(x, y); err != nil {
		return 0, err
	}

	return math.Pow(k.b+dot(x, y), float64(k.degree)), nil
}

// Describe returns "polynomial(degree=D,b=B)".
func (k *Polynomial) Describe() string {
	return fmt.Sprintf("%s(degree=%d,b=%s)", k.name, k.degree, formatFloat(k.b))
}

// String implements fmt.Stringer.
func (k *Polynomial) String() string { return k.Describe() }
