package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// AdaGrad is per-row gradient descent with a per-parameter adaptive step:
// each parameter accumulates the sum of its squared gradients and divides
// the base step by the square root of that sum, so frequently updated
// parameters take smaller steps over time.
//
// Unlike StochasticGD there is no bootstrap asymmetry: every pass sweeps
// all rows 0..r-1 in ascending order.
type AdaGrad struct {
	alpha float64
	eps   float64
	iters int
}

// NewAdaGrad creates an AdaGrad with the given base step size, denominator
// offset and number of passes over the data.
func NewAdaGrad(alpha, eps float64, iters int) *AdaGrad {
	return &AdaGrad{alpha: alpha, eps: eps, iters: iters}
}

// DefaultAdaGrad creates an AdaGrad with base step 1.0, offset 1e-8 and
// 20 passes.
func DefaultAdaGrad() *AdaGrad {
	return &AdaGrad{alpha: 1.0, eps: 1e-8, iters: 20}
}

// Optimize implements Optimizer. It performs exactly iters*rows gradient
// evaluations, one per row per pass.
func (ag *AdaGrad) Optimize(m Optimizable, start []float64, X, y mat.Matrix) (result []float64, err error) {
	const op = "AdaGrad.Optimize"
	defer errors.Recover(&err, op)

	rows, err := checkBatch(op, X, y)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	working := make([]float64, len(start))
	copy(working, start)
	accum := make([]float64, len(start))

	for pass := 0; pass < ag.iters; pass++ {
		for i := 0; i < rows; i++ {
			_, grad, err := m.ComputeGrad(working, SelectRows(X, i), SelectRows(y, i))
			if err != nil {
				return nil, err
			}
			if err := checkGrad(op, working, grad); err != nil {
				return nil, err
			}

			for j, g := range grad {
				accum[j] += g * g
				working[j] -= ag.alpha * g / (math.Sqrt(accum[j]) + ag.eps)
			}
		}
	}

	return working, nil
}
