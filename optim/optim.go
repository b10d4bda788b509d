// Package optim provides gradient-based parameter optimization for
// parametric models.
//
// A model exposes its training problem through the Optimizable capability:
// given a candidate parameter vector and a batch of data/targets it reports
// the cost and the gradient of the cost with respect to the parameters.
// An Optimizer repeatedly folds those gradients into a working parameter
// vector according to its own update rule and returns the improved vector.
//
// Four strategies are provided: GradientDesc (full batch), StochasticGD
// (per row, momentum smoothed), AdaGrad and RMSProp (per row, per-parameter
// adaptive scaling). All of them run a fixed, predetermined number of
// gradient evaluations: there is no convergence test, no early stopping and
// no randomness, so a deterministic model yields a deterministic result.
//
// Strategies hold only immutable hyperparameters. Every Optimize call keeps
// its working state (parameter vector, momentum, accumulators) on its own
// stack frame, so a single strategy value is safe for concurrent use by
// independent calls.
//
// Numerical divergence is a known limitation: a step size too large for the
// model's curvature produces Inf or NaN parameters, which propagate silently
// into the returned vector. Callers that need a verdict can run
// errors.CheckNumericalStability on the result.
package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// Optimizable is the capability a model must provide to be trained by an
// Optimizer.
//
// ComputeGrad evaluates the model's cost at params over the given batch and
// returns the gradient of the cost with respect to params. Implementations
// must be pure: no side effects on params, X or y, and no hidden state
// carried between calls. The returned gradient must have the same length as
// params.
type Optimizable interface {
	ComputeGrad(params []float64, X, y mat.Matrix) (cost float64, grad []float64, err error)
}

// Optimizer produces an improved parameter vector from a starting vector
// and a full data/target set.
//
// Optimize never mutates start, X or y; the returned vector is freshly
// allocated and has the same length as start. All failures surface
// synchronously through the returned error; nothing is retried internally.
type Optimizer interface {
	Optimize(m Optimizable, start []float64, X, y mat.Matrix) ([]float64, error)
}

// SelectRows returns a read-only view of m restricted to the given row
// indices, in the given order. The view shares storage with m; it is valid
// for as long as m is.
//
// The per-row strategies use this to feed single-row batches to the model.
func SelectRows(m mat.Matrix, rows ...int) mat.Matrix {
	return &rowView{src: m, rows: rows}
}

type rowView struct {
	src  mat.Matrix
	rows []int
}

func (v *rowView) Dims() (r, c int) {
	_, c = v.src.Dims()
	return len(v.rows), c
}

func (v *rowView) At(i, j int) float64 {
	return v.src.At(v.rows[i], j)
}

func (v *rowView) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// checkBatch verifies that X and y agree on row count and returns it.
func checkBatch(op string, X, y mat.Matrix) (int, error) {
	xr, _ := X.Dims()
	yr, _ := y.Dims()
	if yr != xr {
		return 0, errors.NewDimensionError(op, xr, yr, 0)
	}
	return xr, nil
}

// checkGrad verifies the gradient returned by a model matches the
// parameter dimension.
func checkGrad(op string, params, grad []float64) error {
	if len(grad) != len(params) {
		return errors.NewDimensionError(op, len(params), len(grad), 1)
	}
	return nil
}
