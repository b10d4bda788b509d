package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// RMSProp is per-row gradient descent that scales each parameter's step by
// a decaying average of its squared gradients:
//
//	s = decay*s + (1-decay)*grad.*grad
//	working = working - alpha*grad ./ (sqrt(s) + eps)
//
// Where AdaGrad's accumulator only grows, the decaying average lets the
// effective step recover after large gradients have passed. Every pass
// sweeps rows 0..r-1 in ascending order.
type RMSProp struct {
	alpha float64
	decay float64
	eps   float64
	iters int
}

// NewRMSProp creates an RMSProp with the given step size, squared-gradient
// decay rate, denominator offset and number of passes over the data.
func NewRMSProp(alpha, decay, eps float64, iters int) *RMSProp {
	return &RMSProp{alpha: alpha, decay: decay, eps: eps, iters: iters}
}

// DefaultRMSProp creates an RMSProp with step 0.01, decay 0.9, offset 1e-8
// and 20 passes.
func DefaultRMSProp() *RMSProp {
	return &RMSProp{alpha: 0.01, decay: 0.9, eps: 1e-8, iters: 20}
}

// Optimize implements Optimizer. It performs exactly iters*rows gradient
// evaluations, one per row per pass.
func (rp *RMSProp) Optimize(m Optimizable, start []float64, X, y mat.Matrix) (result []float64, err error) {
	const op = "RMSProp.Optimize"
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

	for pass := 0; pass < rp.iters; pass++ {
		for i := 0; i < rows; i++ {
			_, grad, err := m.ComputeGrad(working, SelectRows(X, i), SelectRows(y, i))
			if err != nil {
				return nil, err
			}
			if err := checkGrad(op, working, grad); err != nil {
				return nil, err
			}

			for j, g := range grad {
				accum[j] = rp.decay*accum[j] + (1-rp.decay)*g*g
				working[j] -= rp.alpha * g / (math.Sqrt(accum[j]) + rp.eps)
			}
		}
	}

	return working, nil
}
