// Package data exposes the stepwise dataset pipeline: synthetic generation,
// train/validation index splitting, and mini-batch loading.
//
// Example usage:
//
//	import (
//	    "github.com/stepwise-ml/stepwise/data"
//	)
//
//	ds, err := data.Generate(data.GenerateConfig{
//	    Seed: 42, N: 100, Intercept: 1.0, Slope: 2.0, NoiseStd: 0.1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	trainIdx, valIdx, err := data.SplitFraction(ds.Len(), 0.8, data.SplitRandom, 13)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loader, err := data.NewLoader(ds, trainIdx, 16, true, 13)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, batch := range loader.Batches() {
//	    // batch.X, batch.Y
//	}
package data

import (
	"github.com/stepwise-ml/stepwise/internal/data"
)

// ErrInvalidArgument reports a caller-supplied size, fraction, or
// hyperparameter that cannot be satisfied. Test for it with errors.Is.
var ErrInvalidArgument = data.ErrInvalidArgument

// Sample is one labeled observation: a scalar feature and its scalar label.
type Sample = data.Sample

// Dataset is an immutable ordered sequence of samples.
type Dataset = data.Dataset

// GenerateConfig holds the parameters for synthetic dataset generation.
type GenerateConfig = data.GenerateConfig

// Generate produces a reproducible synthetic dataset: features uniform in
// [0, 1), labels Intercept + Slope*x + Normal(0, NoiseStd) noise, all drawn
// from a single seeded source.
func Generate(cfg GenerateConfig) (*Dataset, error) {
	return data.Generate(cfg)
}

// FromSamples builds a Dataset from an explicit sample list.
func FromSamples(samples []Sample) (*Dataset, error) {
	return data.FromSamples(samples)
}

// SplitPolicy selects how the index range is partitioned.
type SplitPolicy = data.SplitPolicy

// Supported split policies. SplitRandom is the default choice for training
// runs; SplitPrefix reproduces a fixed first-k/rest split.
const (
	SplitRandom SplitPolicy = data.SplitRandom
	SplitPrefix SplitPolicy = data.SplitPrefix
)

// Split partitions [0, n) into disjoint train and validation index sets
// covering the range exactly once.
func Split(n, trainSize int, policy SplitPolicy, seed uint64) (train, val []int, err error) {
	return data.Split(n, trainSize, policy, seed)
}

// SplitFraction is Split with the training size given as a fraction of n.
func SplitFraction(n int, frac float64, policy SplitPolicy, seed uint64) (train, val []int, err error) {
	return data.SplitFraction(n, frac, policy, seed)
}

// Batch is one mini-batch of samples.
type Batch = data.Batch

// Loader yields mini-batches over one index partition; see NewLoader.
type Loader = data.Loader

// NewLoader creates a batch loader over an index partition. With shuffle
// enabled each pass re-permutes the indices from seed plus an internal pass
// counter; without it every pass preserves the original order.
func NewLoader(ds *Dataset, indices []int, batchSize int, shuffle bool, seed uint64) (*Loader, error) {
	return data.NewLoader(ds, indices, batchSize, shuffle, seed)
}
