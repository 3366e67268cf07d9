package services

import "errors"

// Kind is the stable machine-readable error classification surfaced to
// API clients alongside the human message.
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindConflict        Kind = "CONFLICT"
	KindInvalidState    Kind = "INVALID_STATE"
	KindValidation      Kind = "VALIDATION_ERROR"
	KindAlreadyRefunded Kind = "ALREADY_REFUNDED"
)

// Error is a request-scoped failure with a stable kind. Nothing in this
// package is fatal to the process.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func notFound(msg string) *Error        { return &Error{Kind: KindNotFound, Msg: msg} }
func unauthorized(msg string) *Error    { return &Error{Kind: KindUnauthorized, Msg: msg} }
func conflict(msg string) *Error        { return &Error{Kind: KindConflict, Msg: msg} }
func invalidState(msg string) *Error    { return &Error{Kind: KindInvalidState, Msg: msg} }
func invalidInput(msg string) *Error    { return &Error{Kind: KindValidation, Msg: msg} }
func alreadyRefunded(msg string) *Error { return &Error{Kind: KindAlreadyRefunded, Msg: msg} }

// KindOf extracts the Kind from any error in the chain; unknown errors
// report an empty Kind and should map to a 500.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
