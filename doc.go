// Package descent provides gradient-based training of linear models for Go,
// designed for backend services that need dependable, reproducible fitting.
//
// The library separates models from the optimizers that train them: any type
// implementing optim.Optimizable can be driven by batch gradient descent,
// momentum-smoothed stochastic gradient descent, AdaGrad or RMSProp.
//
// # Features
//
// - Pluggable optimizers: swap the training strategy without touching the model
// - Deterministic training: fixed traversal order, reproducible results
// - Robust error handling: typed errors with stack traces
// - CPU-parallel preprocessing for large datasets
//
// # Installation
//
// Install descent using go get:
//
//	go get github.com/YuminosukeSato/descent
//
// # Quick Start
//
// Here's a simple example of linear regression:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "github.com/YuminosukeSato/descent/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Create training data: y = 2x + 1
//	    X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
//	    y := mat.NewDense(4, 1, []float64{1, 3, 5, 7})
//
//	    // Create and train model
//	    model := linear.NewLinearRegression()
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Make predictions
//	    XTest := mat.NewDense(2, 1, []float64{4, 5})
//	    predictions, err := model.Predict(XTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("Predictions:", predictions)
//	}
//
// To train with a different strategy, pass an optimizer option:
//
//	model := linear.NewLinearRegression(
//	    linear.WithOptimizer(optim.NewStochasticGD(0.1, 0.1, 100)),
//	)
//
// # Packages
//
// The library is organized into several packages:
//
//   - optim: Optimization strategies (GradientDesc, StochasticGD, AdaGrad, RMSProp)
//   - linear: Linear models (LinearRegression, LogisticRegression)
//   - metrics: Evaluation metrics (MSE, RMSE, MAE, R², accuracy, log loss)
//   - preprocessing: Data preprocessing utilities (StandardScaler)
//   - core/model: Core interfaces and base types
//   - core/parallel: Parallel processing utilities
//   - pkg/errors: Typed errors with stack traces and warning handling
//   - pkg/log: Structured logging built on log/slog
//
// # Performance
//
// descent parallelizes data preparation automatically:
//
//   - Automatic parallelization for datasets with >1000 rows
//   - CPU core detection and optimal worker allocation
//
// # License
//
// descent is released under the MIT License.
package descent
