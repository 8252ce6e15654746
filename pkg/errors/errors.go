// Package errors provides structured error handling for the Slate kernel.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindFont indicates a font registration or resolution error.
	KindFont
	// KindMeasure indicates a text measurement failure.
	KindMeasure
	// KindConfig indicates a stylesheet or configuration error.
	KindConfig
	// KindInit indicates an initialization error.
	KindInit
	// KindRender indicates a render command collection error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindMeasure:
		return "measure"
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SlateError represents a structured error in the Slate kernel.
type SlateError struct {
	// Op is the operation that failed (e.g., "measure.Tree").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the identity of the widget being processed, if applicable.
	Widget int64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SlateError) Error() string {
	if e.Widget != 0 {
		return fmt.Sprintf("%s [%s] widget=%d: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SlateError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "render.Collect").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives reported errors and panics.
type ErrorHandler interface {
	HandleError(err *SlateError)
	HandlePanic(err *PanicError)
}
