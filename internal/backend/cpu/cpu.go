// Package cpu implements the backend.Numeric capability on the host CPU
// using gonum's vectorized float64 kernels.
package cpu

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CPUBackend executes elementwise arithmetic and reductions on the host CPU.
//
// The zero value is ready to use; New is provided for symmetry with other
// backends.
//
// Example:
//
//	be := cpu.New()
//	dst := make([]float64, 3)
//	be.ScaleShift(dst, []float64{1, 2, 3}, 2.0, 0.5) // [2.5, 4.5, 6.5]
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// ScaleShift computes dst[i] = shift + scale*x[i].
func (c *CPUBackend) ScaleShift(dst, x []float64, scale, shift float64) {
	floats.ScaleTo(dst, scale, x)
	floats.AddConst(shift, dst)
}

// Sub computes dst[i] = a[i] - b[i].
func (c *CPUBackend) Sub(dst, a, b []float64) {
	floats.SubTo(dst, a, b)
}

// Mul computes dst[i] = a[i] * b[i].
func (c *CPUBackend) Mul(dst, a, b []float64) {
	floats.MulTo(dst, a, b)
}

// Dot returns the inner product of a and b.
func (c *CPUBackend) Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Mean returns the arithmetic mean of x.
func (c *CPUBackend) Mean(x []float64) float64 {
	if len(x) == 0 {
		panic("cpu: Mean of empty slice")
	}
	return stat.Mean(x, nil)
}
