// Package cpu provides the pure Go CPU backend for stepwise's vector math,
// built on gonum's float64 kernels.
//
// Basic usage:
//
//	import (
//	    "github.com/stepwise-ml/stepwise/backend/cpu"
//	    "github.com/stepwise-ml/stepwise/train"
//	)
//
//	tr, err := train.New(cfg, cpu.New())
package cpu

import (
	"github.com/stepwise-ml/stepwise/backend"
	internalcpu "github.com/stepwise-ml/stepwise/internal/backend/cpu"
)

// Backend executes elementwise arithmetic and reductions on the host CPU.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements backend.Numeric.
var _ backend.Numeric = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
