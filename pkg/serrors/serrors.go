// Package serrors provides semantic error kinds used across the discovery
// engine. Callers match kinds with errors.Is and attach a message or a cause
// with With and Wrap.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. All kinds are created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind sentinel.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the discovery or another entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates an invalid target configuration or argument.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the project scan slot is already taken.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation ran out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a collaborator (gateway, KMS) cannot serve the request.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error carries a kind, an optional cause and an optional message.
// errors.Is and errors.As match both the kind and the wrapped cause.
//
// The string form is "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs an error of the given kind with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs an error of the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of the error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to the error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first semantic kind found in err's chain, or ErrInternal
// when err carries none. It returns nil for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
