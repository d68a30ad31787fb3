package kernel

// Func is a plain kernel formula, promotable to a Function via FromFunc.
type Func func(x, y []float64) float64

// fromFunc adapts a Func to the Function contract under KindCustom.
type fromFunc struct {
	base
	fn Func
}

// FromFunc lifts a plain func(x, y []float64) float64 into the Function
// contract under the given name.  The adapter validates inputs like any
// built-in variant (unless SkipInputChecks is set); symmetry and
// PSD-ness are entirely the supplied function's claim — certify with
// gram.CertifyKernel before trusting either.
func FromFunc(name string, fn Func, opts ...Option) Function {
	return &fromFunc{base: base{name: name, cfg: newConfig(opts)}, fn: fn}
}

// Kind returns KindCustom.
func (k *fromFunc) Kind() Kind { return KindCustom }

// Evaluate validates, then delegates to the wrapped func.
func (k *fromFunc) Evaluate(x, y []float64) (float64, error) {
	if err := k.check(x, y); err != nil {
		return 0, err
	}

	return k.fn(x, y), nil
}

// Describe returns the adapter's name — parameters, if any, are opaque
// to the wrapper.
func (k *fromFunc) Describe() string { return k.name }

// String implements fmt.Stringer.
func (k *fromFunc) String() string { return k.Describe() }
