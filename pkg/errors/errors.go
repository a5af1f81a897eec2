// Package errors provides structured error reporting for badge components.
//
// Components never fail their callers: a badge setter has no error return.
// Problems are reported to a process-wide [ErrorHandler] instead, and the
// component degrades to a safe result.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPrecondition indicates a caller-side contract violation that was
	// turned into a no-op, such as aligning without a parent.
	KindPrecondition
	// KindFont indicates a font registration or measurement failure.
	KindFont
	// KindRender indicates a painting or rasterization failure.
	KindRender
	// KindConfig indicates an invalid style or configuration value.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindFont:
		return "font"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrNoParent is reported when an alignment needs the parent's bounds but the
// badge is not attached to one.
var ErrNoParent = stderrors.New("badge has no parent")

// BadgeError represents a structured error.
type BadgeError struct {
	// Op is the operation that failed (e.g., "badge.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BadgeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BadgeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "compositor.Paint").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *BadgeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
