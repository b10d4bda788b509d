package errors

import (
	"math"
)

// CheckNumericalStability は values に NaN や Inf が混入していないか検査します。
// 不安定な値が見つかった場合は、それらを抜き出した NumericalInstabilityError を
// 返します。iteration には検査時点のイテレーション番号を渡します。
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	var unstable []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			unstable = append(unstable, v)
			if len(unstable) >= 5 {
				// エラーメッセージに載せる値は5個まで
				break
			}
		}
	}
	if unstable != nil {
		return NewNumericalInstabilityError(operation, unstable, iteration)
	}
	return nil
}

// StabilizeLog は log(0) を避けるため、入力を下限 1e-10 で切ってから対数を取ります。
func StabilizeLog(value float64) float64 {
	const floor = 1e-10
	if value < floor {
		value = floor
	}
	return math.Log(value)
}

// StabilizeExp はオーバーフローしない範囲に入力を制限した exp です。
// 入力が大きすぎる場合は exp(700) 付近で飽和し、小さすぎる場合は 0 を返します。
func StabilizeExp(value float64) float64 {
	const limit = 700.0 // これを超えると math.Exp は +Inf を返す
	switch {
	case value > limit:
		return math.Exp(limit)
	case value < -limit:
		return 0
	}
	return math.Exp(value)
}
