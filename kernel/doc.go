// Package kernel provides positive-semidefinite (PSD) kernel functions:
// pairwise similarity measures over numeric vectors, the building block
// of kernel-based learning methods.
//
// 🚀 What is a kernel function?
//
//	A function k(x, y) that scores the similarity of two samples and
//	corresponds (for PSD kernels) to an inner product in some feature
//	space.  The package covers the classic closed set:
//	  • Linear      — x·y                         (always PSD)
//	  • Polynomial  — (b + x·y)^degree            (PSD for degree∈ℕ, b≥0)
//	  • Gaussian    — exp(-‖x−y‖₂² / (2σ²))       (always PSD)
//	  • Laplacian   — exp(-γ·Σ|x−y|)              (PSD for γ>0)
//	  • Sigmoid     — tanh(offset + γ·x·y)        (NOT guaranteed PSD)
//
// ✨ Key features:
//   - one uniform contract (Function) for every variant, with an
//     exhaustive Kind tag for switch-style handling
//   - input validation (numeric coercion + shape check), skippable per
//     instance via SkipInputChecks for bulk evaluation
//   - epsilon flooring of degenerate bandwidths: Gaussian(sigma=0)
//     evaluates to a well-defined limit instead of dividing by zero
//   - a fixed Registry of default-parameterized instances for
//     enumeration ("iterate over all known kernel types")
//   - FromFunc to lift any plain func(x, y []float64) float64 into the
//     same contract
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlkern/kernel"
//
//	k := kernel.NewPolynomial(3, 2)      // (2 + x·y)³
//	v, err := k.Evaluate(x, y)           // validates, then computes
//	fmt.Println(k)                       // polynomial(degree=3,b=2)
//
// Every instance is an immutable value: construction fixes the
// parameters, Evaluate is pure and O(d) in the vector dimension, and
// unsynchronized concurrent use is always safe.
//
// PSD certification of a kernel over a concrete sample set lives in the
// sibling package gram (gram.CertifyKernel); it is a diagnostic, never
// invoked implicitly on evaluation.
package kernel
