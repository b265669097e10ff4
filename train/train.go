// Package train exposes the stepwise mini-batch gradient-descent trainer.
//
// Example usage:
//
//	import (
//	    "github.com/stepwise-ml/stepwise/backend/cpu"
//	    "github.com/stepwise-ml/stepwise/data"
//	    "github.com/stepwise-ml/stepwise/train"
//	)
//
//	ds, _ := data.Generate(data.GenerateConfig{Seed: 42, N: 100, Intercept: 1, Slope: 2, NoiseStd: 0.1})
//	trainIdx, valIdx, _ := data.SplitFraction(ds.Len(), 0.8, data.SplitRandom, 13)
//
//	tr, err := train.New(train.Config{
//	    BatchSize:    16,
//	    LearningRate: 0.1,
//	    Epochs:       1000,
//	    Seed:         42,
//	}, cpu.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := tr.Run(ds, trainIdx, valIdx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("a=%.3f b=%.3f\n", res.A, res.B)
package train

import (
	"io"

	"github.com/stepwise-ml/stepwise/internal/backend"
	"github.com/stepwise-ml/stepwise/internal/train"
)

// Config captures the hyperparameters for a training run.
type Config = train.Config

// Result holds the final parameters and per-step loss histories of a run.
type Result = train.Result

// EpochEndFunc observes the end of one epoch; returning false stops the run.
type EpochEndFunc = train.EpochEndFunc

// Trainer runs the epoch loop over a dataset's train and validation
// partitions.
type Trainer[NB backend.Numeric] = train.Trainer[NB]

// Option configures a Trainer.
type Option[NB backend.Numeric] = train.Option[NB]

// New creates a Trainer, validating the config up front.
func New[NB backend.Numeric](cfg Config, be NB, opts ...Option[NB]) (*Trainer[NB], error) {
	return train.New(cfg, be, opts...)
}

// WithEpochEnd installs a per-epoch callback for progress reporting or
// caller-driven early stopping.
func WithEpochEnd[NB backend.Numeric](fn EpochEndFunc) Option[NB] {
	return train.WithEpochEnd[NB](fn)
}

// SGD applies plain stochastic gradient descent updates.
type SGD[NB backend.Numeric] = train.SGD[NB]

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = train.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD[NB backend.Numeric](config SGDConfig) *SGD[NB] {
	return train.NewSGD[NB](config)
}

// WriteHistoryCSV writes a Result's loss histories as phase,step,loss CSV.
func WriteHistoryCSV(w io.Writer, res *Result) error {
	return train.WriteHistoryCSV(w, res)
}
