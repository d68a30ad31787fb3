package kernel

import (
	"fmt"
	"math"
	"reflect"
)

// Eps is the float64 machine epsilon (2⁻⁵²), the smallest value any
// scale parameter is allowed to reach inside a denominator.
const Eps = 0x1p-52

// FloorEpsilon clamps v to at least Eps.
//
// It is applied to every configured parameter that appears in a
// denominator or as a variance term (Gaussian sigma and its derived
// scale), so that a bandwidth driven toward zero converges to a
// well-defined limit instead of raising a division error.  This trades
// strict parameter fidelity for numerical stability, deliberately.
func FloorEpsilon(v float64) float64 {
	return math.Max(v, Eps)
}

// CheckPair is the typed fast-path validation run by Evaluate: both
// vectors must be non-empty and of equal length.
func CheckPair(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("%w: x=%v, y=%v", ErrEmptyInput, x, y)
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: x=%v (len %d), y=%v (len %d)",
			ErrDimensionMismatch, x, len(x), y, len(y))
	}

	return nil
}

// ValidatePair coerces two raw inputs to numeric vectors and confirms
// their shapes are compatible for a dot/distance reduction.  On failure
// the returned error names both offending inputs verbatim.
func ValidatePair(x, y any) ([]float64, []float64, error) {
	xv, xerr := Coerce(x)
	yv, yerr := Coerce(y)
	if xerr != nil || yerr != nil {
		return nil, nil, fmt.Errorf("%w: x=%v, y=%v", ErrNonNumeric, x, y)
	}
	if err := CheckPair(xv, yv); err != nil {
		return nil, nil, err
	}

	return xv, yv, nil
}

// Coerce normalizes a raw caller-supplied input into a []float64.
//
// Accepted: slices or arrays of any Go integer, unsigned or float
// element type ([]float64 passes through unconverted).
// Rejected with ErrNonNumeric: strings, bool sequences, and sequences of
// generic/object-typed elements ([]any, structs, maps…).
func Coerce(v any) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		return s, nil
	case []float32:
		out := make([]float64, len(s))
		for i, e := range s {
			out[i] = float64(e)
		}

		return out, nil
	case []int:
		out := make([]float64, len(s))
		for i, e := range s {
			out[i] = float64(e)
		}

		return out, nil
	}

	// Uncommon numeric element types go through reflection.
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, fmt.Errorf("%w: %v", ErrNonNumeric, v)
	}
	n := rv.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		e := rv.Index(i)
		switch e.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[i] = float64(e.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out[i] = float64(e.Uint())
		case reflect.Float32, reflect.Float64:
			out[i] = e.Float()
		default:
			// bool, string, interface, struct… — not a numeric sample
			return nil, fmt.Errorf("%w: %v", ErrNonNumeric, v)
		}
	}

	return out, nil
}
