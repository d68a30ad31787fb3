package kernel

import "errors"

var (
	// ErrNonNumeric indicates an input that cannot be coerced to a
	// numeric vector (string, bool sequence, generic-object sequence…).
	ErrNonNumeric = errors.New("kernel: input is not a numeric vector")

	// ErrEmptyInput indicates an empty sample vector.
	ErrEmptyInput = errors.New("kernel: input vector must be non-empty")

	// ErrDimensionMismatch indicates two vectors of different lengths.
	ErrDimensionMismatch = errors.New("kernel: input vectors must have equal length")
)
