// Package errors provides structured error handling for the Ripple runtime.
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
	// KindDeclaration indicates an invalid or incomplete type declaration.
	KindDeclaration
	// KindBinding indicates a field or event binding that could not be installed.
	KindBinding
	// KindEvaluation indicates a failure inside a user callback
	// (render entry, lifecycle hook, watch handler, or computed getter).
	KindEvaluation
	// KindCycle indicates a circular or runaway computed dependency chain.
	KindCycle
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindBinding:
		return "binding"
	case KindEvaluation:
		return "evaluation"
	case KindCycle:
		return "cycle"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RuntimeError represents a structured error in the Ripple runtime.
type RuntimeError struct {
	// Op is the operation that failed (e.g., "core.NewInstance").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Component is the component type name, if applicable.
	Component string
	// Field is the field involved, if applicable.
	Field string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RuntimeError) Error() string {
	switch {
	case e.Component != "" && e.Field != "":
		return fmt.Sprintf("%s [%s] component=%s field=%s: %v", e.Op, e.Kind, e.Component, e.Field, e.Err)
	case e.Component != "":
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	default:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Instance.Update").
	Op string
	// Component is the component type name, if applicable.
	Component string
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

// ErrorHandler receives errors reported by the Ripple runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RuntimeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
