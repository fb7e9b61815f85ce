// Package errors provides structured error handling for the animated
// value graph and its drivers.
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
	// KindGraph indicates a node graph error (bad edge, bad evaluation).
	KindGraph
	// KindDriver indicates an animation driver error.
	KindDriver
	// KindConfig indicates a preset configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindDriver:
		return "driver"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrDivisionByZero is reported by division nodes whose divisor parent
// evaluates to zero.
var ErrDivisionByZero = fmt.Errorf("division by zero in animated node")

// ErrNoNode is reported when a driver is started without a value node.
var ErrNoNode = fmt.Errorf("driver has no value node")

// AnimatedError represents a structured error in the animation subsystem.
type AnimatedError struct {
	// Op is the operation that failed (e.g., "animation.TimingDriver.Start").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Node is the registry tag of the node involved, if any.
	Node int64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AnimatedError) Error() string {
	if e.Node != 0 {
		return fmt.Sprintf("%s [%s] node=%d: %v", e.Op, e.Kind, e.Node, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AnimatedError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.StepTickers").
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

// ErrorHandler receives errors reported by the animation subsystem.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *AnimatedError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
