package train

import (
	"github.com/stepwise-ml/stepwise/internal/backend"
	"github.com/stepwise-ml/stepwise/internal/model"
)

// SGD applies plain stochastic gradient descent updates:
//
//	a = a - lr * gradA
//	b = b - lr * gradB
//
// Example:
//
//	sgd := train.NewSGD(train.SGDConfig{LR: 0.1})
//	loss, gradA, gradB := m.LossAndGradients(batch.X, batch.Y)
//	sgd.Step(m, gradA, gradB)
type SGD[NB backend.Numeric] struct {
	lr float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD[NB backend.Numeric](config SGDConfig) *SGD[NB] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[NB]{lr: config.LR}
}

// Step applies one parameter update from the given gradients. Both
// parameters are written in a single assignment each, so no reader of the
// model between steps ever observes a partial update.
func (s *SGD[NB]) Step(m *model.Linear[NB], gradA, gradB float64) {
	m.A -= s.lr * gradA
	m.B -= s.lr * gradB
}

// GetLR returns the current learning rate.
func (s *SGD[NB]) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for schedules driven from an
// epoch-end callback.
func (s *SGD[NB]) SetLR(lr float64) {
	s.lr = lr
}
