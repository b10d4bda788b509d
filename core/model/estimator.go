package model

import "gonum.org/v1/gonum/mat"

// Fitter は訓練データから学習できるモデル
type Fitter interface {
	// Fit は X と y を用いてモデルを学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は学習済みパラメータで予測を行うモデル
type Predictor interface {
	// Predict は入力 X に対する予測値を返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// ProbabilisticPredictor はクラス確率も推定できる分類モデル
type ProbabilisticPredictor interface {
	Predictor
	// PredictProba は各クラスの所属確率を返す
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// LinearModel は係数と切片を公開する線形モデル
type LinearModel interface {
	// Weights は学習された係数ベクトルを返す
	Weights() []float64
	// Intercept は学習された切片を返す
	Intercept() float64
	// Score はモデルの評価値を返す（回帰は R²、分類は正解率）
	Score(X, y mat.Matrix) (float64, error)
}
