// Package model exposes the one-feature linear model y = a + b*x, its MSE
// loss and analytic gradients, and an exact least-squares baseline.
package model

import (
	"github.com/stepwise-ml/stepwise/internal/backend"
	"github.com/stepwise-ml/stepwise/internal/model"
)

// Linear is the trainable model y = A + B*x.
type Linear[NB backend.Numeric] = model.Linear[NB]

// New creates a Linear model with explicit initial parameters.
func New[NB backend.Numeric](a, b float64, be NB) *Linear[NB] {
	return model.New(a, b, be)
}

// Init creates a Linear model with parameters drawn once from a seeded
// standard normal source.
func Init[NB backend.Numeric](seed uint64, be NB) *Linear[NB] {
	return model.Init(seed, be)
}

// FitOLS solves the one-feature least-squares problem exactly. It is the
// closed-form answer the iterative trainer should approach.
func FitOLS(x, y []float64) (a, b float64, err error) {
	return model.FitOLS(x, y)
}
