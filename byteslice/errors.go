package byteslice

import "errors"

// Kind is a stable category for programmatic error handling.
// Branch on Kind rather than on error strings.
type Kind string

const (
	KindInvalidArgument Kind = "InvalidArgument"
)

// Error is the package's structured error type. Op names the operation or
// component that failed. Message is meant for humans.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Message: msg}
}

func wrapError(kind Kind, op, msg string, cause error) error {
	if cause == nil {
		return newError(kind, op, msg)
	}
	return &Error{Kind: kind, Op: op, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
