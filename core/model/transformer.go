package model

import "gonum.org/v1/gonum/mat"

// Transformer は特徴量変換を学習して適用するコンポーネント
type Transformer interface {
	// Fit は変換パラメータを X から推定する
	Fit(X mat.Matrix) error

	// Transform は学習済みパラメータで X を変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform は Fit に続けて Transform を実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
