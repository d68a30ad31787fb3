package kernel

import "math"

// Scalar reduction loops shared by the variants.  Each is O(d) over the
// common vector length; callers guarantee len(x) == len(y) (via
// CheckPair, or on their own when checks are skipped).

// dot returns the inner product x·y.
func dot(x, y []float64) float64 {
	var s float64
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}

// sqDist returns the squared Euclidean distance ‖x−y‖₂².
func sqDist(x, y []float64) float64 {
	var s float64
	for i := range x {
		d := x[i] - y[i]
		s += d * d
	}

	return s
}

// l1Dist returns the Manhattan distance Σ|x−y|.
func l1Dist(x, y []float64) float64 {
	var s float64
	for i := range x {
		s += math.Abs(x[i] - y[i])
	}

	return s
}
