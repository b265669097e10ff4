package data

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// SplitPolicy selects how the index range is partitioned into train and
// validation sets.
type SplitPolicy int

const (
	// SplitRandom (the default) applies a seeded permutation to [0, n)
	// before taking the first trainSize indices for training.
	SplitRandom SplitPolicy = iota

	// SplitPrefix keeps the original order: indices [0, trainSize) train,
	// the rest validate.
	SplitPrefix
)

// String returns the policy name.
func (p SplitPolicy) String() string {
	switch p {
	case SplitRandom:
		return "random"
	case SplitPrefix:
		return "prefix"
	default:
		return fmt.Sprintf("SplitPolicy(%d)", int(p))
	}
}

// Split partitions the index range [0, n) into disjoint train and validation
// index sets whose union covers the range exactly. trainSize indices go to
// the training set; the remainder validate. The seed is only consulted for
// SplitRandom.
//
// The returned slices are freshly allocated and safe for the caller to hold
// for the lifetime of a run.
func Split(n, trainSize int, policy SplitPolicy, seed uint64) (train, val []int, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: dataset size must be > 0 (got %d)", ErrInvalidArgument, n)
	}
	if trainSize < 0 || trainSize > n {
		return nil, nil, fmt.Errorf("%w: train size %d outside [0, %d]", ErrInvalidArgument, trainSize, n)
	}

	var order []int
	switch policy {
	case SplitRandom:
		order = rand.New(rand.NewSource(seed)).Perm(n)
	case SplitPrefix:
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	default:
		return nil, nil, fmt.Errorf("%w: unknown split policy %d", ErrInvalidArgument, int(policy))
	}

	train = append([]int(nil), order[:trainSize]...)
	val = append([]int(nil), order[trainSize:]...)
	return train, val, nil
}

// SplitFraction is Split with the training size given as a fraction of n,
// rounded down. frac must lie in [0, 1].
func SplitFraction(n int, frac float64, policy SplitPolicy, seed uint64) (train, val []int, err error) {
	if frac < 0 || frac > 1 || math.IsNaN(frac) {
		return nil, nil, fmt.Errorf("%w: train fraction %g outside [0, 1]", ErrInvalidArgument, frac)
	}
	return Split(n, int(float64(n)*frac), policy, seed)
}
