package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "descent: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "descent: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name    string
		axis    int
		wantMsg string
	}{
		{
			name:    "row axis",
			axis:    0,
			wantMsg: "descent: Predict: dimension mismatch on axis 0 (rows). Expected 10, got 5",
		},
		{
			name:    "feature axis",
			axis:    1,
			wantMsg: "descent: Predict: dimension mismatch on axis 1 (features). Expected 10, got 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("Predict", 10, 5, tt.axis)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// DimensionError型にキャスト可能か確認
			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Error("Error should be castable to *DimensionError")
			}
			if dimErr.Axis != tt.axis {
				t.Errorf("Axis = %d, want %d", dimErr.Axis, tt.axis)
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Predict")

	// 基本的なエラーメッセージの確認
	want := "descent: LinearRegression: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValueError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		param   string
		value   interface{}
		message string
		wantMsg string
	}{
		{
			name:    "with message",
			op:      "SetParam",
			param:   "learning_rate",
			value:   -0.5,
			message: "must be positive",
			wantMsg: "descent: SetParam: learning_rate: -0.5 (must be positive)",
		},
		{
			name:    "without message",
			op:      "SetParam",
			param:   "n_components",
			value:   0,
			message: "",
			wantMsg: "descent: SetParam: n_components: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.message != "" {
				err = NewValueError(tt.op, fmt.Sprintf("%s: %v (%s)", tt.param, tt.value, tt.message))
			} else {
				err = NewValueError(tt.op, fmt.Sprintf("%s: %v", tt.param, tt.value))
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// ValueError型にキャスト可能か確認
			var valErr *ValueError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValueError")
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("alpha", "must be positive", -0.5)

	// 基本的なエラーメッセージの確認
	want := "descent: validation failed for parameter 'alpha': must be positive (got: -0.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// ValidationError型にキャスト可能か確認
	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestNewNumericalInstabilityError(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0}
	err := NewNumericalInstabilityError("gradient_update", values, 42)

	msg := err.Error()
	if !strings.Contains(msg, "descent: numerical instability detected in gradient_update at iteration 42") {
		t.Errorf("unexpected message: %s", msg)
	}

	// 表示される値は5個までに制限される
	if !strings.Contains(msg, "...") {
		t.Errorf("message should truncate long value lists: %s", msg)
	}
}

func TestWrapAndIs(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// ラップ
	wrapped := Wrap(baseErr, "in LinearRegression.Fit")

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	if !strings.Contains(wrapped.Error(), "in LinearRegression.Fit") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// フォーマット付きラップ
	wrapped := Wrapf(baseErr, "in %s: expected %d, got %d", "Predict", 10, 5)

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	expectedMsg := "in Predict: expected 10, got 5"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	// チェーン全体を確認
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(func(w error) {})

	warning := NewNumericalInstabilityError("loss_calculation", []float64{1e308}, 3)
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "loss_calculation") {
		t.Errorf("unexpected warning: %v", captured)
	}
}

func TestEnableZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	EnableZerologWarnings(zerolog.New(&buf))
	defer SetZerologWarnFunc(nil)

	Warn(NewDimensionError("Transform", 4, 2, 1))

	// 構造化フィールドを含むJSONとして出力されることを確認
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["type"] != "DimensionError" {
		t.Errorf("type = %v, want DimensionError", entry["type"])
	}
	if entry["operation"] != "Transform" {
		t.Errorf("operation = %v, want Transform", entry["operation"])
	}
}

func TestZerologWarnFuncTakesPriority(t *testing.T) {
	handlerCalled := false
	SetWarningHandler(func(w error) {
		handlerCalled = true
	})
	defer SetWarningHandler(func(w error) {})

	zerologCalled := false
	SetZerologWarnFunc(func(warning error) {
		zerologCalled = true
	})
	defer SetZerologWarnFunc(nil)

	Warn(New("some warning"))

	if !zerologCalled {
		t.Error("zerolog warn func should be invoked when set")
	}
	if handlerCalled {
		t.Error("fallback handler should not run when zerolog warn func is set")
	}
}
