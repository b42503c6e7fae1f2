// Package errors provides structured error handling for the Arbor framework.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates bad constructor input.
	KindInvalidArgument
	// KindInvalidAttachment indicates a node incompatible with the target
	// container or slot.
	KindInvalidAttachment
	// KindAlreadyAssigned indicates a second write to a write-once cell.
	KindAlreadyAssigned
	// KindNotYetAssigned indicates a read from a write-once cell before
	// its first write.
	KindNotYetAssigned
	// KindMarkup indicates a failure while building a tree from a markup
	// document.
	KindMarkup
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidAttachment:
		return "invalid_attachment"
	case KindAlreadyAssigned:
		return "already_assigned"
	case KindNotYetAssigned:
		return "not_yet_assigned"
	case KindMarkup:
		return "markup"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Arbor framework.
type Error struct {
	// Op is the operation that failed (e.g., "core.Build").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Node is the identity of the node involved, if applicable.
	Node string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [%s] node=%s: %v", e.Op, e.Kind, e.Node, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an Error with the current time.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf constructs an Error from a format string.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return New(op, kind, fmt.Errorf(format, args...))
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Build configure").
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

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
// A PanicError reports KindPanic.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	var p *PanicError
	if stderrors.As(err, &p) {
		return KindPanic
	}
	return KindUnknown
}

// IsInvalidArgument reports whether err carries KindInvalidArgument.
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }

// IsInvalidAttachment reports whether err carries KindInvalidAttachment.
func IsInvalidAttachment(err error) bool { return KindOf(err) == KindInvalidAttachment }

// IsAlreadyAssigned reports whether err carries KindAlreadyAssigned.
func IsAlreadyAssigned(err error) bool { return KindOf(err) == KindAlreadyAssigned }

// IsNotYetAssigned reports whether err carries KindNotYetAssigned.
func IsNotYetAssigned(err error) bool { return KindOf(err) == KindNotYetAssigned }

// IsMarkup reports whether err carries KindMarkup.
func IsMarkup(err error) bool { return KindOf(err) == KindMarkup }
