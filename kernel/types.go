// Package kernel defines the variant tags, defaults and construction
// options shared by every kernel function.
package kernel

// Kind tags one member of the closed kernel-variant set.
//
// The set is fixed: a switch over Kind that handles every constant below
// (plus KindCustom for FromFunc adapters) is exhaustive.  Registry order
// follows the constant order.
type Kind int

const (
	// KindPolynomial — (b + x·y)^degree; PSD for degree∈ℕ and b≥0.
	KindPolynomial Kind = iota

	// KindGaussian — exp(-‖x−y‖₂²/(2σ²)); PSD for any σ.
	KindGaussian

	// KindLaplacian — exp(-γ·Σ|x−y|); PSD for γ>0.
	KindLaplacian

	// KindLinear — plain dot product x·y; always PSD.
	KindLinear

	// KindSigmoid — tanh(offset + γ·x·y); NOT guaranteed PSD.
	KindSigmoid

	// KindCustom — a FromFunc adapter; PSD-ness is the caller's claim.
	KindCustom
)

// kindNames maps Kind constants to their canonical lowercase names.
var kindNames = [...]string{
	KindPolynomial: "polynomial",
	KindGaussian:   "gaussian",
	KindLaplacian:  "laplacian",
	KindLinear:     "linear",
	KindSigmoid:    "sigmoid",
	KindCustom:     "custom",
}

// String returns the canonical name of the kind, or "unknown" for a
// value outside the defined set.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Default parameter values used by the Registry instances, matching the
// per-variant constructor documentation.
const (
	// DefaultDegree is the Registry Polynomial degree.
	DefaultDegree = 2
	// DefaultIntercept is the Registry Polynomial intercept b.
	DefaultIntercept = 0.0
	// DefaultSigma is the Registry Gaussian bandwidth.
	DefaultSigma = 2.0
	// DefaultGamma is the Registry Laplacian scale factor.
	DefaultGamma = 1.0
	// DefaultSigmoidGamma is the Registry Sigmoid scale factor.
	DefaultSigmoidGamma = 1.0
	// DefaultSigmoidOffset is the Registry Sigmoid offset/bias.
	DefaultSigmoidOffset = 1.0
)

// config carries construction-time flags shared by every variant.
// It also serves as the extension point for alternate evaluation
// strategies (e.g. a sparse-input dot product) without widening the
// Function contract.
type config struct {
	skipChecks bool
}

// Option customizes kernel construction.
type Option func(*config)

// SkipInputChecks disables per-call input validation on the constructed
// instance.  Skipping validation is strongly discouraged for normal use:
// callers that skip it assume full responsibility for input correctness
// (a mismatched pair will panic on index rather than return an error).
func SkipInputChecks() Option {
	return func(c *config) { c.skipChecks = true }
}

// newConfig folds opts over the zero config.
func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
