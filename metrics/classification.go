package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// Accuracy は正解率（一致したラベルの割合）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// AccuracyMatrix は行列形式の入力に対して正解率を計算する
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	yTrueVec, yPredVec, err := columnVectors("AccuracyMatrix", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return Accuracy(yTrueVec, yPredVec)
}

// LogLoss は二値分類の交差エントロピー損失を計算する
// yProba はクラス1に属する予測確率を与える
func LogLoss(yTrue, yProba *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("LogLoss", "empty vector")
	}

	if yProba.Len() != n {
		return 0, errors.NewDimensionError("LogLoss", n, yProba.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		label := yTrue.AtVec(i)
		if label != 0 && label != 1 {
			return 0, errors.NewValueError("LogLoss", "labels must be 0 or 1")
		}

		p := yProba.AtVec(i)
		if p < 0 || p > 1 {
			return 0, errors.NewValueError("LogLoss", "probabilities must be in [0, 1]")
		}

		// 対数は数値的に安定化してあるため p=0 や p=1 でも発散しない
		sum -= label*errors.StabilizeLog(p) + (1-label)*errors.StabilizeLog(1-p)
	}

	return sum / float64(n), nil
}
