package kernel

import (
	"fmt"
	"math"
)

// Sigmoid is the hyperbolic tangent kernel
// k(x, y) = tanh(offset + γ · x·y).
//
// NOTE: this kernel is NOT guaranteed PSD for any parameter choice, and
// normalizing a Sigmoid-derived Gram matrix can be numerically unstable.
// Detecting and handling that instability is the caller's concern; this
// package neither flags nor forbids it.
type Sigmoid struct {
	base
	gamma  float64
	offset float64
}

// NewSigmoid constructs a Sigmoid kernel with scale factor gamma and
// offset/bias.  The Registry default is gamma=1.0, offset=1.0.
func NewSigmoid(gamma, offset float64, opts ...Option) *Sigmoid {
	return &Sigmoid{
		base:   base{name: "sigmoid", cfg: newConfig(opts)},
		gamma:  gamma,
		offset: offset,
	}
}

// Kind returns KindSigmoid.
func (k *Sigmoid) Kind() Kind { return KindSigmoid }

// Gamma returns the configured scale factor.
func (k *Sigmoid) Gamma() float64 { return k.gamma }

// Offset returns the configured offset/bias.
func (k *Sigmoid) Offset() float64 { return k.offset }

// Evaluate returns tanh(offset + γ · x·y).
func (k *Sigmoid) Evaluate(x, y []float64) (float64, error) {
	if err := k.check(x, y); err != nil {
		return 0, err
	}

	return math.Tanh(k.offset + k.gamma*dot(x, y)), nil
}

// Describe returns "sigmoid(gamma=G,offset=O)".
func (k *Sigmoid) Describe() string {
	return fmt.Sprintf("%s(gamma=%s,offset=%s)",
		k.name, formatFloat(k.gamma), formatFloat(k.offset))
}

// String implements fmt.Stringer.
func (k *Sigmoid) String() string { return k.Describe() }
