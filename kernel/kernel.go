package kernel

import "strconv"

// Function is the uniform contract shared by every kernel variant.
//
// Implementations are immutable value objects: parameters are fixed at
// construction, Evaluate is pure and deterministic, and concurrent
// unsynchronized use is always safe.
//
// Contract:
//   - Evaluate(x, y) == Evaluate(y, x) for every well-formed pair
//     (symmetry, up to floating-point rounding of the reductions);
//   - Evaluate validates its inputs first unless the instance was built
//     with SkipInputChecks, and fails only on validation;
//   - Describe() renders the fixed form "name(param1=v1,param2=v2,...)",
//     or the bare name for parameterless variants.
type Function interface {
	// Name returns the immutable identity tag, e.g. "gaussian".
	Name() string

	// Kind returns the variant tag for exhaustive switch-style handling.
	Kind() Kind

	// Evaluate computes the kernel value for the pair (x, y).
	// Returns a validation error when checks are enabled and the pair is
	// malformed; otherwise never fails for numeric input.
	Evaluate(x, y []float64) (float64, error)

	// Describe returns the deterministic human-readable representation.
	Describe() string
}

// base carries the identity and flags common to all variants.
type base struct {
	name string
	cfg  config
}

// Name returns the variant's immutable identity tag.
func (b base) Name() string { return b.name }

// check runs the typed fast-path validation unless the instance was
// constructed with SkipInputChecks.
func (b base) check(x, y []float64) error {
	if b.cfg.skipChecks {
		return nil
	}

	return CheckPair(x, y)
}

// Apply coerces two raw inputs to numeric vectors and evaluates k on
// them — the dynamic counterpart of Function.Evaluate for callers whose
// samples arrive untyped.  Coercion failures surface as ErrNonNumeric;
// shape failures as ErrDimensionMismatch.
func Apply(k Function, x, y any) (float64, error) {
	xv, yv, err := ValidatePair(x, y)
	if err != nil {
		return 0, err
	}

	return k.Evaluate(xv, yv)
}

// formatFloat renders a parameter value in its minimal decimal form
// (2 rather than 2.000000), keeping Describe output stable and terse.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
