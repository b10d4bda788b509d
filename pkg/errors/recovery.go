package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// PanicError は回復されたpanicをエラーとして表現します。
// 発生箇所の操作名、panicに渡された値、その時点のスタックトレースを保持します。
type PanicError struct {
	Operation  string
	PanicValue interface{}
	StackTrace string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap は nil を返します。PanicErrorは他のエラーをラップしません。
func (e *PanicError) Unwrap() error {
	return nil
}

// String はスタックトレースを含む詳細表現を返します。
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *PanicError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Str("panic_value", fmt.Sprintf("%v", e.PanicValue)).
		Str("type", "PanicError")
}

// NewPanicError は現在のスタックトレースを取り込んだPanicErrorを作成します。
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		Operation:  operation,
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
	}
}

// Recover はdeferから呼び出し、panicをエラーに変換して *err に格納します。
//
//	func (gd *GradientDesc) Optimize(...) (err error) {
//	    defer errors.Recover(&err, "GradientDesc.Optimize")
//	    ...
//	}
//
// すでに *err にエラーが入っている状態でpanicが起きた場合は、
// 元のエラーをpanic情報でラップします。
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = Wrapf(*err, "panic in %s: %v", operation, r)
		return
	}
	*err = NewPanicError(operation, r)
}

// SafeExecute は fn を実行し、panicが起きた場合はPanicErrorとして返します。
// fn が返したエラーはそのまま返します。
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
