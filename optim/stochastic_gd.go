package optim

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
)

// StochasticGD is momentum-smoothed per-row gradient descent. Each pass
// sweeps the rows in ascending index order; the momentum term delta_w is an
// exponentially smoothed mix of recent per-row gradients:
//
//	delta_w = mu*grad + alpha*delta_w
//	working = working - mu*delta_w
//
// Row 0 plays a special role: it is evaluated exactly once, at the start
// vector, to seed the momentum term (delta_w = alpha*grad, followed by one
// working-vector update), and every subsequent pass sweeps rows 1..r-1
// only. Momentum persists across passes within a single Optimize call and
// never across calls.
//
// Despite the name the sweep is deterministic, not sampled: traversal order
// is fixed, so results are reproducible for a deterministic model.
type StochasticGD struct {
	alpha float64
	mu    float64
	iters int
}

// NewStochasticGD creates a StochasticGD with the given momentum decay
// alpha, step size mu, and number of passes over the data.
func NewStochasticGD(alpha, mu float64, iters int) *StochasticGD {
	return &StochasticGD{alpha: alpha, mu: mu, iters: iters}
}

// DefaultStochasticGD creates a StochasticGD with momentum decay 0.1,
// step size 0.1 and 20 passes.
func DefaultStochasticGD() *StochasticGD {
	return &StochasticGD{alpha: 0.1, mu: 0.1, iters: 20}
}

// Optimize implements Optimizer. It performs exactly 1 + iters*(rows-1)
// gradient evaluations: one bootstrap call on row 0 plus one call per
// remaining row per pass. An empty data set is rejected before any
// evaluation.
func (s *StochasticGD) Optimize(m Optimizable, start []float64, X, y mat.Matrix) (result []float64, err error) {
	const op = "StochasticGD.Optimize"
	defer errors.Recover(&err, op)

	rows, err := checkBatch(op, X, y)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	logger := log.GetLoggerWithName("optim.stochastic_gd")
	debugging := logger.Enabled(context.Background(), log.LevelDebug)

	// Bootstrap: seed the momentum term from row 0 at the start vector.
	var lastCost float64
	_, grad, err := m.ComputeGrad(start, SelectRows(X, 0), SelectRows(y, 0))
	if err != nil {
		return nil, err
	}
	if err := checkGrad(op, start, grad); err != nil {
		return nil, err
	}

	deltaW := make([]float64, len(grad))
	copy(deltaW, grad)
	floats.Scale(s.alpha, deltaW)

	working := make([]float64, len(start))
	copy(working, start)
	floats.AddScaled(working, -s.mu, deltaW)

	for pass := 0; pass < s.iters; pass++ {
		for i := 1; i < rows; i++ {
			lastCost, grad, err = m.ComputeGrad(working, SelectRows(X, i), SelectRows(y, i))
			if err != nil {
				return nil, err
			}
			if err := checkGrad(op, working, grad); err != nil {
				return nil, err
			}

			// delta_w = mu*grad + alpha*delta_w
			floats.Scale(s.alpha, deltaW)
			floats.AddScaled(deltaW, s.mu, grad)
			floats.AddScaled(working, -s.mu, deltaW)
		}

		if debugging {
			logger.Debug("pass complete",
				log.EpochKey, pass,
				log.LossKey, lastCost)
		}
	}

	return working, nil
}
