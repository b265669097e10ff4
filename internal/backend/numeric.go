// Package backend defines the numeric capability the model math runs on.
//
// The trainer and model are written against the Numeric interface so that
// where the arithmetic executes is a configuration concern, not part of the
// training contract. The CPU implementation lives in backend/cpu.
package backend

// Numeric provides elementwise arithmetic and reductions over ordered
// float64 sequences.
//
// All elementwise methods require dst and every operand to have equal
// length; implementations panic on mismatch (programmer error, not a
// runtime condition).
type Numeric interface {
	// ScaleShift computes dst[i] = shift + scale*x[i].
	ScaleShift(dst, x []float64, scale, shift float64)

	// Sub computes dst[i] = a[i] - b[i].
	Sub(dst, a, b []float64)

	// Mul computes dst[i] = a[i] * b[i].
	Mul(dst, a, b []float64)

	// Dot returns the inner product of a and b.
	Dot(a, b []float64) float64

	// Mean returns the arithmetic mean of x. Panics on empty input.
	Mean(x []float64) float64
}
