package linear

import "github.com/YuminosukeSato/descent/optim"

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithOptimizer sets the optimization strategy used during fitting
func WithOptimizer(o optim.Optimizer) Option {
	return func(lr *LinearRegression) {
		lr.optimizer = o
	}
}

// WithFitIntercept sets whether to estimate the intercept term
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// LogisticOption is a function that configures LogisticRegression
type LogisticOption func(*LogisticRegression)

// WithLogisticOptimizer sets the optimization strategy used during fitting
func WithLogisticOptimizer(o optim.Optimizer) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.optimizer = o
	}
}

// WithLogisticFitIntercept sets whether to estimate the intercept term
func WithLogisticFitIntercept(fit bool) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.fitIntercept = fit
	}
}
