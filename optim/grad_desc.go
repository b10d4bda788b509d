package optim

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
)

// GradientDesc is full-batch gradient descent: every iteration evaluates
// the gradient over the entire data set and steps the working vector by
// -alpha times that gradient.
//
// The cost sequence is non-increasing only when alpha is small enough for
// the model's curvature; nothing here enforces that.
type GradientDesc struct {
	alpha float64
	iters int
}

// NewGradientDesc creates a GradientDesc with the given step size and
// iteration count.
func NewGradientDesc(alpha float64, iters int) *GradientDesc {
	return &GradientDesc{alpha: alpha, iters: iters}
}

// DefaultGradientDesc creates a GradientDesc with step size 0.3 and
// 100 iterations.
func DefaultGradientDesc() *GradientDesc {
	return &GradientDesc{alpha: 0.3, iters: 100}
}

// Optimize implements Optimizer. It performs exactly the configured number
// of full-batch gradient evaluations; with zero iterations the start vector
// is returned unchanged (as a fresh copy).
func (gd *GradientDesc) Optimize(m Optimizable, start []float64, X, y mat.Matrix) (result []float64, err error) {
	const op = "GradientDesc.Optimize"
	defer errors.Recover(&err, op)

	if _, err := checkBatch(op, X, y); err != nil {
		return nil, err
	}

	logger := log.GetLoggerWithName("optim.gradient_desc")
	debugging := logger.Enabled(context.Background(), log.LevelDebug)

	working := make([]float64, len(start))
	copy(working, start)

	for iter := 0; iter < gd.iters; iter++ {
		cost, grad, err := m.ComputeGrad(working, X, y)
		if err != nil {
			return nil, err
		}
		if err := checkGrad(op, working, grad); err != nil {
			return nil, err
		}

		floats.AddScaled(working, -gd.alpha, grad)

		if debugging && iter%10 == 0 {
			logger.Debug("optimization progress",
				log.IterationKey, iter,
				log.LossKey, cost)
		}
	}

	return working, nil
}
