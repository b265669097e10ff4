package train

import (
	"fmt"
	"math"

	"github.com/stepwise-ml/stepwise/internal/backend"
	"github.com/stepwise-ml/stepwise/internal/data"
	"github.com/stepwise-ml/stepwise/internal/model"
)

// Config captures the hyperparameters for a training run.
type Config struct {
	BatchSize    int     // samples per mini-batch (must be > 0)
	LearningRate float64 // SGD step size (must be > 0)
	Epochs       int     // full passes over the training partition (>= 0)
	Seed         uint64  // seeds parameter init and per-epoch batch shuffling
}

// Validate verifies the config is runnable.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be > 0 (got %d)", data.ErrInvalidArgument, c.BatchSize)
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) {
		return fmt.Errorf("%w: learning rate must be > 0 (got %g)", data.ErrInvalidArgument, c.LearningRate)
	}
	if c.Epochs < 0 {
		return fmt.Errorf("%w: epochs must be >= 0 (got %d)", data.ErrInvalidArgument, c.Epochs)
	}
	return nil
}

// Result holds the outcome of a run: final parameters and the append-only
// per-step loss histories (one entry per training step, one per validation
// batch).
type Result struct {
	A, B      float64
	TrainLoss []float64
	ValLoss   []float64
}

// EpochEndFunc observes the end of one epoch. trainLoss and valLoss are that
// epoch's mean losses (valLoss is NaN when the validation partition is
// empty). Returning false stops the run early; the Result then covers the
// epochs completed so far.
type EpochEndFunc func(epoch int, trainLoss, valLoss float64) bool

// Option configures a Trainer.
type Option[NB backend.Numeric] func(*Trainer[NB])

// WithEpochEnd installs a per-epoch callback, typically for progress logging
// or caller-driven early stopping.
func WithEpochEnd[NB backend.Numeric](fn EpochEndFunc) Option[NB] {
	return func(t *Trainer[NB]) {
		t.onEpochEnd = fn
	}
}

// Trainer runs the epoch loop: a shuffled training pass with one parameter
// update per batch, then an ordered validation pass that only records
// losses. Execution is a single logical thread; the model parameters are the
// only state mutated across iterations.
type Trainer[NB backend.Numeric] struct {
	cfg        Config
	backend    NB
	onEpochEnd EpochEndFunc
}

// New creates a Trainer, validating the config up front.
func New[NB backend.Numeric](cfg Config, be NB, opts ...Option[NB]) (*Trainer[NB], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Trainer[NB]{cfg: cfg, backend: be}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Run trains on the train partition and evaluates on the validation
// partition for the configured number of epochs.
//
// The training partition must be non-empty. An empty validation partition is
// allowed: the validation pass still runs each epoch but appends no losses.
func (t *Trainer[NB]) Run(ds *data.Dataset, trainIdx, valIdx []int) (*Result, error) {
	if len(trainIdx) == 0 {
		return nil, fmt.Errorf("%w: training partition is empty", data.ErrInvalidArgument)
	}

	trainLoader, err := data.NewLoader(ds, trainIdx, t.cfg.BatchSize, true, t.cfg.Seed)
	if err != nil {
		return nil, err
	}
	valLoader, err := data.NewLoader(ds, valIdx, t.cfg.BatchSize, false, t.cfg.Seed)
	if err != nil {
		return nil, err
	}

	m := model.Init(t.cfg.Seed, t.backend)
	sgd := NewSGD[NB](SGDConfig{LR: t.cfg.LearningRate})

	res := &Result{
		TrainLoss: make([]float64, 0, t.cfg.Epochs*trainLoader.NumBatches()),
		ValLoss:   make([]float64, 0, t.cfg.Epochs*valLoader.NumBatches()),
	}

	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		var epochTrain float64
		trainBatches := trainLoader.Batches()
		for _, batch := range trainBatches {
			loss, gradA, gradB := m.LossAndGradients(batch.X, batch.Y)
			sgd.Step(m, gradA, gradB)
			res.TrainLoss = append(res.TrainLoss, loss)
			epochTrain += loss
		}
		epochTrain /= float64(len(trainBatches))

		epochVal := math.NaN()
		valBatches := valLoader.Batches()
		if len(valBatches) > 0 {
			epochVal = 0
			for _, batch := range valBatches {
				loss := m.Loss(batch.X, batch.Y)
				res.ValLoss = append(res.ValLoss, loss)
				epochVal += loss
			}
			epochVal /= float64(len(valBatches))
		}

		if t.onEpochEnd != nil && !t.onEpochEnd(epoch, epochTrain, epochVal) {
			break
		}
	}

	res.A = m.A
	res.B = m.B
	return res, nil
}
