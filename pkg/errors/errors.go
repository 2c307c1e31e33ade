// Package errors provides structured error reporting for the interaction layer.
//
// Nothing in this package is fatal. Configuration mistakes (a controlled cell
// with no change callback, attaching a watcher twice) surface as warnings and
// the offending primitive degrades to a safe no-op; a UI must stay interactive
// no matter what a widget author got wrong.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a developer-error condition in primitive setup,
	// such as a double attach or a controlled value with no change callback.
	KindConfig
	// KindFocus indicates a focus management condition, such as a scope
	// activated over a container with no focusable content.
	KindFocus
	// KindBoundary indicates an outside-dismissal or escape-dispatch condition.
	KindBoundary
	// KindGesture indicates a touch tracking condition.
	KindGesture
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindFocus:
		return "focus"
	case KindBoundary:
		return "boundary"
	case KindGesture:
		return "gesture"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// InteractionError represents a structured error in the interaction layer.
type InteractionError struct {
	// Op is the operation that failed (e.g., "focus.Ring.Activate").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InteractionError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *InteractionError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "boundary.Coordinator.HandleKey").
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

// Handler receives errors reported by the interaction layer.
type Handler interface {
	// HandleError is called when an error or warning is reported.
	HandleError(err *InteractionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
