// Package model は学習器が共通して実装するインターフェースと基底型を定義します。
package model

// EstimatorState は学習器の状態を表す値
type EstimatorState int

const (
	// NotFitted は未学習の状態
	NotFitted EstimatorState = iota
	// Fitted は学習済みの状態
	Fitted
)

// BaseEstimator は学習状態の管理を提供する基底型。
// 各モデルに埋め込んで使う。
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は学習済みなら true を返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は学習完了を記録する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は未学習状態に戻す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
