package kernel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlkern/kernel"
)

// benchmarkEvaluate runs k on a fixed random pair of the given
// dimension, resetting the timer after setup and failing on unexpected
// errors.
func benchmarkEvaluate(b *testing.B, k kernel.Function, dim int) {
	rng := rand.New(rand.NewSource(1))
	x := randVector(rng, dim)
	y := randVector(rng, dim)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := k.Evaluate(x, y); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkLinear_Dim128 benchmarks the dot-product kernel on 128 features.
func BenchmarkLinear_Dim128(b *testing.B) {
	benchmarkEvaluate(b, kernel.NewLinear(), 128)
}

// BenchmarkPolynomial_Dim128 benchmarks the polynomial kernel on 128 features.
func BenchmarkPolynomial_Dim128(b *testing.B) {
	benchmarkEvaluate(b, kernel.NewPolynomial(3, 1), 128)
}

// BenchmarkGaussian_Dim128 benchmarks the RBF kernel on 128 features.
func BenchmarkGaussian_Dim128(b *testing.B) {
	benchmarkEvaluate(b, kernel.NewGaussian(1), 128)
}

// BenchmarkLaplacian_Dim128 benchmarks the L1 kernel on 128 features.
func BenchmarkLaplacian_Dim128(b *testing.B) {
	benchmarkEvaluate(b, kernel.NewLaplacian(1), 128)
}

// BenchmarkSigmoid_Dim128 benchmarks the tanh kernel on 128 features.
func BenchmarkSigmoid_Dim128(b *testing.B) {
	benchmarkEvaluate(b, kernel.NewSigmoid(1, 1), 128)
}

// BenchmarkGaussian_SkipChecks measures the validation overhead the
// SkipInputChecks flag removes on the hot path.
func BenchmarkGaussian_SkipChecks(b *testing.B) {
	benchmarkEvaluate(b, kernel.NewGaussian(1, kernel.SkipInputChecks()), 128)
}
