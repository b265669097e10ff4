package data

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Batch is one mini-batch of samples, gathered from the dataset for a single
// pass. X and Y are parallel slices owned by the batch; they are transient
// and not retained by the loader.
type Batch struct {
	X []float64
	Y []float64
}

// Size returns the number of samples in the batch.
func (b Batch) Size() int {
	return len(b.X)
}

// Loader yields mini-batches over one index partition of a dataset.
//
// Each call to Batches is an independent full pass: all but possibly the
// last batch hold exactly batchSize samples, and together the batches cover
// the partition's indices exactly once. With shuffle enabled the index order
// is re-permuted at the start of every pass from the loader's seed combined
// with an internal pass counter, so successive epochs see different but
// reproducible orderings. Without shuffle every pass preserves the original
// index order (the validation setting).
//
// Example:
//
//	loader, err := data.NewLoader(ds, trainIdx, 16, true, 42)
//	if err != nil {
//	    return err
//	}
//	for epoch := 0; epoch < epochs; epoch++ {
//	    for _, batch := range loader.Batches() {
//	        step(batch)
//	    }
//	}
type Loader struct {
	ds        *Dataset
	indices   []int
	batchSize int
	shuffle   bool
	seed      uint64
	passes    uint64
}

// NewLoader creates a Loader over the given index partition.
func NewLoader(ds *Dataset, indices []int, batchSize int, shuffle bool, seed uint64) (*Loader, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be > 0 (got %d)", ErrInvalidArgument, batchSize)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= ds.Len() {
			return nil, fmt.Errorf("%w: index %d outside dataset range [0, %d)", ErrInvalidArgument, idx, ds.Len())
		}
	}
	return &Loader{
		ds:        ds,
		indices:   append([]int(nil), indices...),
		batchSize: batchSize,
		shuffle:   shuffle,
		seed:      seed,
	}, nil
}

// NumBatches returns the number of batches in one full pass:
// ceil(len(indices) / batchSize).
func (l *Loader) NumBatches() int {
	return (len(l.indices) + l.batchSize - 1) / l.batchSize
}

// Batches runs one full pass and returns its batches in order. The pass is
// materialized up front; batch contents are copies and remain valid after
// the next pass starts.
func (l *Loader) Batches() []Batch {
	order := l.indices
	if l.shuffle {
		// Fresh permutation per pass, reproducible from seed + pass counter.
		rng := rand.New(rand.NewSource(l.seed + l.passes))
		l.passes++
		order = append([]int(nil), l.indices...)
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	batches := make([]Batch, 0, l.NumBatches())
	for start := 0; start < len(order); start += l.batchSize {
		end := start + l.batchSize
		if end > len(order) {
			end = len(order)
		}
		xs, ys := l.ds.Gather(order[start:end])
		batches = append(batches, Batch{X: xs, Y: ys})
	}
	return batches
}
