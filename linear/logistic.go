package linear

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/core/model"
	"github.com/YuminosukeSato/descent/metrics"
	"github.com/YuminosukeSato/descent/optim"
	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
)

// LogisticRegression is a binary classifier trained by minimizing the
// cross-entropy cost with one of the optim strategies. Labels must be
// 0 or 1; Predict applies a 0.5 probability threshold.
type LogisticRegression struct {
	model.BaseEstimator

	weights   *mat.VecDense
	intercept float64
	nFeatures int

	optimizer    optim.Optimizer
	fitIntercept bool
}

// NewLogisticRegression creates a logistic regression model. By default it
// trains with batch gradient descent and estimates an intercept term.
func NewLogisticRegression(opts ...LogisticOption) *LogisticRegression {
	lr := &LogisticRegression{
		optimizer:    optim.DefaultGradientDesc(),
		fitIntercept: true,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// sigmoid computes 1/(1+exp(-z)) with overflow protection.
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + errors.StabilizeExp(-z))
}

// Fit trains the classifier on X and binary labels y.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) error {
	start := time.Now()

	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LogisticRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LogisticRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LogisticRegression.Fit", "y must be a column vector")
	}
	for i := 0; i < r; i++ {
		if v := y.At(i, 0); v != 0 && v != 1 {
			return errors.NewValueError("LogisticRegression.Fit", "labels must be 0 or 1")
		}
	}

	lr.nFeatures = c

	design := mat.Matrix(X)
	nParams := c
	if lr.fitIntercept {
		design = augmentIntercept(X)
		nParams = c + 1
	}

	initial := make([]float64, nParams)
	params, err := lr.optimizer.Optimize(lr, initial, design, y)
	if err != nil {
		return err
	}

	if lr.fitIntercept {
		lr.intercept = params[0]
		lr.weights = mat.NewVecDense(c, params[1:])
	} else {
		lr.intercept = 0
		lr.weights = mat.NewVecDense(c, params)
	}
	lr.SetFitted()

	logger := log.GetLoggerWithName("linear.logistic")
	logger.Info("training completed",
		log.ModelNameKey, "LogisticRegression",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return nil
}

// ComputeGrad computes the cross-entropy cost and its gradient at params:
//
//	cost = -(1/n) * sum(y*log(p) + (1-y)*log(1-p)),  p = sigmoid(X*params)
//	grad = (1/n) * X^T (p - y)
//
// The log terms are numerically stabilized so that saturated probabilities
// do not produce infinities.
func (lr *LogisticRegression) ComputeGrad(params []float64, X, y mat.Matrix) (float64, []float64, error) {
	const op = "LogisticRegression.ComputeGrad"

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if len(params) != c {
		return 0, nil, errors.NewDimensionError(op, c, len(params), 1)
	}
	ry, cy := y.Dims()
	if ry != r {
		return 0, nil, errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return 0, nil, errors.NewValueError(op, "y must be a column vector")
	}

	w := mat.NewVecDense(c, params)
	z := mat.NewVecDense(r, nil)
	z.MulVec(X, w)

	n := float64(r)
	cost := 0.0
	// Reuse z as the residual p - y once each cost term is accumulated.
	for i := 0; i < r; i++ {
		p := sigmoid(z.AtVec(i))
		label := y.At(i, 0)
		cost -= label*errors.StabilizeLog(p) + (1-label)*errors.StabilizeLog(1-p)
		z.SetVec(i, p-label)
	}
	cost /= n

	grad := mat.NewVecDense(c, nil)
	grad.MulVec(X.T(), z)
	gradData := grad.RawVector().Data
	floats.Scale(1/n, gradData)

	return cost, gradData, nil
}

// Predict returns the class label (0 or 1) for each row of X.
func (lr *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}

	r, _ := proba.Dims()
	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		if proba.At(i, 1) >= 0.5 {
			predictions.Set(i, 0, 1)
		}
	}
	return predictions, nil
}

// PredictProba returns an r x 2 matrix of class probabilities, with
// column 0 holding P(y=0) and column 1 holding P(y=1).
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "PredictProba")
	}

	r, c := X.Dims()
	if c != lr.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProba", lr.nFeatures, c, 1)
	}

	proba := mat.NewDense(r, 2, nil)
	for i := 0; i < r; i++ {
		z := lr.intercept
		for j := 0; j < c; j++ {
			z += X.At(i, j) * lr.weights.AtVec(j)
		}
		p := sigmoid(z)
		proba.Set(i, 0, 1-p)
		proba.Set(i, 1, p)
	}
	return proba, nil
}

// Weights returns the fitted coefficients.
func (lr *LogisticRegression) Weights() []float64 {
	if lr.weights == nil {
		return nil
	}

	weights := make([]float64, lr.weights.Len())
	for i := 0; i < lr.weights.Len(); i++ {
		weights[i] = lr.weights.AtVec(i)
	}
	return weights
}

// Intercept returns the fitted intercept.
func (lr *LogisticRegression) Intercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.intercept
}

// Score returns the mean accuracy on the given test data and labels.
func (lr *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LogisticRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.AccuracyMatrix(y, yPred)
}
