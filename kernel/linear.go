package kernel

// Linear is the plain dot-product kernel k(x, y) = x·y.
//
// It has no parameters and its Gram matrix is PSD for every finite
// sample set (it is literally a matrix of inner products).
type Linear struct {
	base
}

// NewLinear constructs the Linear kernel.
func NewLinear(opts ...Option) *Linear {
	return &Linear{base: base{name: "linear", cfg: newConfig(opts)}}
}

// Kind returns KindLinear.
func (k *Linear) Kind() Kind { return KindLinear }

// Evaluate returns x·y.
func (k *Linear) Evaluate(x, y []float64) (float64, error) {
	if err := k.check(x, y); err != nil {
		return 0, err
	}

	return dot(x, y), nil
}

// Describe returns "linear" — the variant has no parameters to render.
func (k *Linear) Describe() string { return k.name }

// String implements fmt.Stringer.
func (k *Linear) String() string { return k.Describe() }
