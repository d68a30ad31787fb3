package kernel

// defined holds one default-constructed, immutable instance per variant,
// in fixed order: Polynomial, Gaussian, Laplacian, Linear, Sigmoid.
// Built once at process start, never mutated afterward.
var defined = []Function{
	NewPolynomial(DefaultDegree, DefaultIntercept),
	NewGaussian(DefaultSigma),
	NewLaplacian(DefaultGamma),
	NewLinear(),
	NewSigmoid(DefaultSigmoidGamma, DefaultSigmoidOffset),
}

// Registry returns the fixed, ordered sequence of default-parameterized
// kernel instances, one per supported variant.  It exists purely for
// discovery — "iterate over all known kernel types" — and carries no
// per-call state.  The returned slice is a fresh copy, so reordering or
// truncating it cannot affect other callers; the instances themselves
// are immutable and shared.
func Registry() []Function {
	out := make([]Function, len(defined))
	copy(out, defined)

	return out
}
