package gram

import "errors"

var (
	// ErrNilKernel indicates a nil kernel function.
	ErrNilKernel = errors.New("gram: kernel must be non-nil")
	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("gram: sample set must be non-empty")
	// ErrEmptySample indicates a zero-dimensional sample row.
	ErrEmptySample = errors.New("gram: samples must have at least one feature")
	// ErrRaggedSamples indicates sample rows of differing lengths.
	ErrRaggedSamples = errors.New("gram: all samples must have the same length")
	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("gram: eigendecomposition failed")
)
