// Package model implements the one-feature linear model y = a + b*x with
// mean-squared-error loss and its exact analytic gradients.
package model

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/stepwise-ml/stepwise/internal/backend"
)

// Linear is the trainable model y = a + b*x.
//
// A and B are the only mutable state of a training run. They are plain
// numeric values updated by explicit assignment once per optimization step;
// there is no hidden graph-tracking object whose identity must be preserved.
//
// Type parameter B selects the numeric backend the elementwise math runs on.
//
// Example:
//
//	be := cpu.New()
//	m := model.Init(42, be)
//	loss, gradA, gradB := m.LossAndGradients(batch.X, batch.Y)
type Linear[NB backend.Numeric] struct {
	A, B float64

	backend NB
}

// New creates a Linear model with explicit initial parameters.
func New[NB backend.Numeric](a, b float64, be NB) *Linear[NB] {
	return &Linear[NB]{A: a, B: b, backend: be}
}

// Init creates a Linear model with parameters drawn once from a seeded
// standard normal source. The same seed always produces the same
// initialization.
func Init[NB backend.Numeric](seed uint64, be NB) *Linear[NB] {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	return &Linear[NB]{A: normal.Rand(), B: normal.Rand(), backend: be}
}

// Forward computes predictions yhat_i = A + B*x_i.
func (m *Linear[NB]) Forward(x []float64) []float64 {
	yhat := make([]float64, len(x))
	m.backend.ScaleShift(yhat, x, m.B, m.A)
	return yhat
}

// residual computes y - yhat. Panics when x and y differ in length
// (programmer error: batches always gather parallel slices).
func (m *Linear[NB]) residual(x, y []float64) []float64 {
	if len(x) != len(y) {
		panic("model: feature and label slices must have the same length")
	}
	r := make([]float64, len(x))
	m.backend.Sub(r, y, m.Forward(x))
	return r
}

// Loss returns the mean squared error over the batch: mean((y - yhat)^2).
// This is the full-batch mean, not a running average.
func (m *Linear[NB]) Loss(x, y []float64) float64 {
	r := m.residual(x, y)
	sq := make([]float64, len(r))
	m.backend.Mul(sq, r, r)
	return m.backend.Mean(sq)
}

// LossAndGradients computes the MSE loss together with its exact gradients
// with respect to A and B:
//
//	gradA = -2 * mean(y - yhat)
//	gradB = -2 * mean(x * (y - yhat))
//
// These closed forms match what differentiating MSE for this model yields,
// so an autodiff engine applied to the same loss produces the same updates.
func (m *Linear[NB]) LossAndGradients(x, y []float64) (loss, gradA, gradB float64) {
	r := m.residual(x, y)
	n := float64(len(r))

	sq := make([]float64, len(r))
	m.backend.Mul(sq, r, r)
	loss = m.backend.Mean(sq)

	gradA = -2 * m.backend.Mean(r)
	gradB = -2 * m.backend.Dot(x, r) / n
	return loss, gradA, gradB
}
