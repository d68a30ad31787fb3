// Package lvlkern is a small toolkit for kernel-based similarity:
// positive-semidefinite (PSD) kernel functions plus the Gram matrix
// machinery needed to certify them.
//
// 🚀 What is lvlkern?
//
//	A library that brings together the numeric building blocks of
//	kernel methods (SVMs, kernel PCA, MMD tests, …):
//		• Kernel functions: Linear, Polynomial, Gaussian (RBF),
//		  Laplacian and Sigmoid, behind one uniform contract
//		• Input validation: numeric coercion + shape checks,
//		  skippable per instance for bulk use
//		• Numeric safety: epsilon flooring so degenerate bandwidths
//		  never zero a denominator
//		• Gram matrices: parallel assembly over a sample set
//		• PSD certification: eigenvalue check over any Gram matrix
//
// ✨ Why choose lvlkern?
//
//   - Minimal API, clear naming — construct a kernel, call Evaluate
//   - Pure computation — no locks needed, every instance is immutable
//     and safe for concurrent use
//   - Honest numerics — symmetry and PSD guarantees are documented per
//     variant and covered by tests
//
// Everything is organized under two subpackages:
//
//	kernel/ — kernel function abstraction, the five variants, validation
//	          helpers and the default-instance registry
//	gram/   — Gram matrix assembly and the eigenvalue-based PSD check
//
// Quick sketch:
//
//	k := kernel.NewGaussian(1.0)
//	v, err := k.Evaluate([]float64{1, 0}, []float64{0, 1})
//	// v ≈ 0.3679
//
//	go get github.com/katalvlaran/lvlkern/kernel
package lvlkern
