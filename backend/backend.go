// Package backend exposes the numeric capability interface the stepwise
// model and trainer are written against. Implementations live in
// subpackages (currently backend/cpu).
package backend

import (
	"github.com/stepwise-ml/stepwise/internal/backend"
)

// Numeric provides elementwise arithmetic and reductions over ordered
// float64 sequences. Satisfy it to run the trainer on a different compute
// substrate.
type Numeric = backend.Numeric
