package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/core/model"
	"github.com/YuminosukeSato/descent/linear"
	"github.com/YuminosukeSato/descent/optim"
	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
	"github.com/YuminosukeSato/descent/preprocessing"
)

var (
	dataPath      string
	modelName     string
	optimizerName string
	alpha         float64
	momentum      float64
	decay         float64
	epsilon       float64
	iters         int
	scale         bool
	noIntercept   bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a model on a CSV dataset",
	Long: `Trains a linear or logistic regression model on a CSV file. The last
column is used as the target; all other columns are features. A header row
is skipped automatically when present.`,
	RunE: runTraining,
}

func init() {
	trainCmd.Flags().StringVar(&dataPath, "data", "", "CSV dataset path (required)")
	trainCmd.Flags().StringVar(&modelName, "model", "linear", "Model: linear, logistic")
	trainCmd.Flags().StringVar(&optimizerName, "optimizer", "gd", "Optimizer: gd, sgd, adagrad, rmsprop")
	trainCmd.Flags().Float64Var(&alpha, "alpha", 0.1, "Learning rate")
	trainCmd.Flags().Float64Var(&momentum, "momentum", 0.1, "Momentum decay (sgd)")
	trainCmd.Flags().Float64Var(&decay, "decay", 0.9, "Accumulator decay (rmsprop)")
	trainCmd.Flags().Float64Var(&epsilon, "epsilon", 1e-8, "Numerical stability term (adagrad, rmsprop)")
	trainCmd.Flags().IntVar(&iters, "iters", 100, "Iterations (gd, adagrad, rmsprop) or passes over the data (sgd)")
	trainCmd.Flags().BoolVar(&scale, "scale", false, "Standardize features before training")
	trainCmd.Flags().BoolVar(&noIntercept, "no-intercept", false, "Train without an intercept term")

	_ = trainCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(trainCmd)
}

func runTraining(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	X, y, err := loadCSV(dataPath)
	if err != nil {
		return err
	}
	rows, cols := X.Dims()

	slog.Info("dataset loaded",
		slog.String("path", dataPath),
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
	)

	features := mat.Matrix(X)
	if scale {
		scaler := preprocessing.NewStandardScalerDefault()
		features, err = scaler.FitTransform(X)
		if err != nil {
			return err
		}
	}

	opt, err := buildOptimizer()
	if err != nil {
		return err
	}

	start := time.Now()
	var trained model.LinearModel

	switch modelName {
	case "linear":
		reg := linear.NewLinearRegression(
			linear.WithOptimizer(opt),
			linear.WithFitIntercept(!noIntercept),
		)
		if err := reg.Fit(features, y); err != nil {
			return err
		}
		trained = reg
	case "logistic":
		clf := linear.NewLogisticRegression(
			linear.WithLogisticOptimizer(opt),
			linear.WithLogisticFitIntercept(!noIntercept),
		)
		if err := clf.Fit(features, y); err != nil {
			return err
		}
		trained = clf
	}
	elapsed := time.Since(start)

	// 学習結果にNaNやInfが混入していないか確認する
	if err := errors.CheckNumericalStability("train", trained.Weights(), iters); err != nil {
		errors.Warn(err)
	}

	score, err := trained.Score(features, y)
	if err != nil {
		return err
	}

	scoreKey := log.R2ScoreKey
	if modelName == "logistic" {
		scoreKey = log.AccuracyKey
	}
	slog.Info("model trained",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationFit,
		log.DurationMsKey, elapsed.Milliseconds(),
		log.LearningRateKey, alpha,
		scoreKey, score,
	)

	printResult(trained, score, elapsed)
	return nil
}

func printResult(trained model.LinearModel, score float64, elapsed time.Duration) {
	fmt.Printf("Model: %s\n", modelName)
	fmt.Printf("Optimizer: %s\n", optimizerName)

	weights := trained.Weights()
	fmt.Print("Weights:")
	for _, w := range weights {
		fmt.Printf(" %.6f", w)
	}
	fmt.Println()
	fmt.Printf("Intercept: %.6f\n", trained.Intercept())

	if modelName == "logistic" {
		fmt.Printf("Accuracy: %.4f\n", score)
	} else {
		fmt.Printf("R²: %.4f\n", score)
	}
	fmt.Printf("Training time: %v\n", elapsed)
}

func validateFlags() error {
	switch modelName {
	case "linear", "logistic":
	default:
		return errors.NewValidationError("model", "must be one of linear, logistic", modelName)
	}
	if alpha <= 0 {
		return errors.NewValidationError("alpha", "must be positive", alpha)
	}
	if iters <= 0 {
		return errors.NewValidationError("iters", "must be positive", iters)
	}
	return nil
}

func buildOptimizer() (optim.Optimizer, error) {
	switch optimizerName {
	case "gd":
		return optim.NewGradientDesc(alpha, iters), nil
	case "sgd":
		return optim.NewStochasticGD(momentum, alpha, iters), nil
	case "adagrad":
		return optim.NewAdaGrad(alpha, epsilon, iters), nil
	case "rmsprop":
		return optim.NewRMSProp(alpha, decay, epsilon, iters), nil
	default:
		return nil, errors.NewValidationError("optimizer", "must be one of gd, sgd, adagrad, rmsprop", optimizerName)
	}
}

// loadCSV は最後の列を目的変数として読み込む
// 先頭行が数値として解釈できない場合はヘッダとして読み飛ばす
func loadCSV(path string) (*mat.Dense, *mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read dataset %s", path)
	}
	if len(records) > 0 {
		if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
			records = records[1:]
		}
	}
	if len(records) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, path)
	}

	cols := len(records[0])
	if cols < 2 {
		return nil, nil, errors.NewValueError("loadCSV", "dataset needs at least one feature column and one target column")
	}

	rows := len(records)
	X := mat.NewDense(rows, cols-1, nil)
	y := mat.NewDense(rows, 1, nil)
	for i, rec := range records {
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "row %d column %d of %s", i, j, path)
			}
			if j == cols-1 {
				y.Set(i, 0, v)
			} else {
				X.Set(i, j, v)
			}
		}
	}
	return X, y, nil
}
