// Package linear は勾配法で学習する線形モデルを提供します。
package linear

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/core/model"
	"github.com/YuminosukeSato/descent/core/parallel"
	"github.com/YuminosukeSato/descent/metrics"
	"github.com/YuminosukeSato/descent/optim"
	"github.com/YuminosukeSato/descent/pkg/errors"
)

// LinearRegression は線形回帰モデル
// 最小二乗コストを optim パッケージの勾配法で最小化して学習する
type LinearRegression struct {
	model.BaseEstimator

	weights   *mat.VecDense // 重み（係数）
	intercept float64       // 切片
	nFeatures int           // 特徴量の数

	optimizer    optim.Optimizer // 学習に使用する最適化戦略
	fitIntercept bool            // 切片を学習するかどうか
}

// NewLinearRegression は新しい線形回帰モデルを作成する
// デフォルトではバッチ勾配降下法で学習し、切片を推定する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		optimizer:    optim.DefaultGradientDesc(),
		fitIntercept: true,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// augmentIntercept は切片項のために X の先頭に 1 の列を追加した行列を返す
// X_with_intercept = [1, X]
func augmentIntercept(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	augmented := mat.NewDense(r, c+1, nil)

	// ParallelizeWithThresholdを使用して、データサイズに応じて並列化
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			augmented.Set(i, 0, 1.0) // 切片項
			for j := 0; j < c; j++ {
				augmented.Set(i, j+1, X.At(i, j))
			}
		}
	})

	return augmented
}

// Fit はモデルを訓練データで学習させる
// コスト関数 ||Xw - y||^2 / (2n) を設定された最適化戦略で最小化する
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	// 入力の検証
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}

	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}

	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.nFeatures = c

	// 切片を学習する場合は計画行列に 1 の列を追加し、
	// パラメータベクトルの先頭要素を切片として扱う
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

	// 切片と重みを分離
	if lr.fitIntercept {
		lr.intercept = params[0]
		lr.weights = mat.NewVecDense(c, params[1:])
	} else {
		lr.intercept = 0
		lr.weights = mat.NewVecDense(c, params)
	}

	// モデルを学習済み状態に設定
	lr.SetFitted()

	return nil
}

// ComputeGrad は最小二乗コストとその勾配を計算する
// コストは ||Xp - y||^2 / (2n)、勾配は X^T (Xp - y) / n
// 最適化戦略から全データまたは単一行のビューを渡して呼び出される
func (lr *LinearRegression) ComputeGrad(params []float64, X, y mat.Matrix) (float64, []float64, error) {
	const op = "LinearRegression.ComputeGrad"

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

	// 残差 Xp - y を計算
	w := mat.NewVecDense(c, params)
	resid := mat.NewVecDense(r, nil)
	resid.MulVec(X, w)
	for i := 0; i < r; i++ {
		resid.SetVec(i, resid.AtVec(i)-y.At(i, 0))
	}

	n := float64(r)
	cost := 0.5 * mat.Dot(resid, resid) / n

	// 勾配 X^T (Xp - y) / n
	grad := mat.NewVecDense(c, nil)
	grad.MulVec(X.T(), resid)
	gradData := grad.RawVector().Data
	floats.Scale(1/n, gradData)

	return cost, gradData, nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.nFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.nFeatures, c, 1)
	}

	// 予測: y = X * weights + intercept
	predictions := mat.NewDense(r, 1, nil)

	for i := 0; i < r; i++ {
		pred := lr.intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}

// Weights は学習された重み（係数）を返す
func (lr *LinearRegression) Weights() []float64 {
	if lr.weights == nil {
		return nil
	}

	weights := make([]float64, lr.weights.Len())
	for i := 0; i < lr.weights.Len(); i++ {
		weights[i] = lr.weights.AtVec(i)
	}
	return weights
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.intercept
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.R2ScoreMatrix(y, yPred)
}
