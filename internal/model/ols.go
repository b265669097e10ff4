package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/stepwise-ml/stepwise/internal/data"
)

// FitOLS solves the one-feature least-squares problem exactly via QR
// factorization of the design matrix [1 x_i]. It is the closed-form baseline
// the iterative trainer should approach.
//
// Requires at least two samples; with fewer the system is underdetermined.
func FitOLS(x, y []float64) (a, b float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%w: feature/label length mismatch (%d vs %d)", data.ErrInvalidArgument, len(x), len(y))
	}
	if len(x) < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2 samples for least squares (got %d)", data.ErrInvalidArgument, len(x))
	}

	n := len(x)
	design := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		design.Set(i, 1, x[i])
	}
	labels := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(design)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, labels); err != nil {
		return 0, 0, fmt.Errorf("least squares solve: %w", err)
	}
	return beta.AtVec(0), beta.AtVec(1), nil
}
