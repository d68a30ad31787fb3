// Package gram assembles Gram (kernel) matrices over finite sample sets
// and certifies their positive-semidefinite (PSD) property.
//
// 🚀 What is a Gram matrix?
//
//	For a kernel k and samples s₁…s_N, the N×N matrix G with
//	G[i][j] = k(sᵢ, sⱼ).  If k is a valid (Mercer) kernel, G is
//	symmetric PSD: all eigenvalues ≥ 0, so G corresponds to an inner
//	product in some feature space.
//
// ✨ Key features:
//   - Assemble — builds G computing the upper triangle only (symmetry
//     comes from the kernel contract) and fanning rows across a bounded
//     worker pool; pairwise evaluations are independent, so the
//     decomposition is embarrassingly parallel
//   - IsPSD — eigenvalue certification of any symmetric matrix within a
//     tolerance (gonum EigenSym under the hood)
//   - CertifyKernel — the one-call diagnostic: assemble a kernel's Gram
//     matrix over a sample set and certify it
//   - MinEigenvalue — the detail the boolean hides, for diagnostics
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlkern/gram"
//	  "github.com/katalvlaran/lvlkern/kernel"
//	)
//
//	m, err := gram.Assemble(kernel.NewGaussian(1.0), samples, nil)
//	ok, err := m.IsPSD(gram.DefaultTol)
//
// Complexity: Assemble is O(N²·d) kernel work for N samples of
// dimension d; IsPSD is the O(N³) symmetric eigendecomposition.
package gram
