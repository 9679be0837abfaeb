package authdog

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which branch of the error taxonomy an Error belongs to
type ErrorKind int

const (
	// KindAuthdog is the catch-all kind used for transport, body-read and parse failures
	KindAuthdog ErrorKind = iota
	// KindAuthentication is returned for an HTTP 401 from the userinfo endpoint
	KindAuthentication
	// KindAPI is returned for provider-side and unclassified non-2xx responses
	KindAPI
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "AuthenticationError"
	case KindAPI:
		return "APIError"
	default:
		return "AuthdogError"
	}
}

// Sentinels for use with errors.Is. They match any *Error of the same kind.
var (
	ErrAuthdog        = &Error{Kind: KindAuthdog}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrAPI            = &Error{Kind: KindAPI}
)

// Error is the single error type returned by the client. It carries only a
// human readable message and, for transport and parse failures, the cause.
type Error struct {
	Kind    ErrorKind
	Message string
	err     error
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		err:     err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is an *Error of the same kind. The message is
// not compared, so the package sentinels match every error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Base converts the error into the base AuthdogError kind, keeping the message
// and cause.
func (e *Error) Base() *Error {
	return &Error{
		Kind:    KindAuthdog,
		Message: e.Message,
		err:     e.err,
	}
}

// IsAuthenticationError reports whether err is, or wraps, an authentication error
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsAPIError reports whether err is, or wraps, an API error
func IsAPIError(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsAuthdogError reports whether err is, or wraps, any error produced by this
// package. Every kind is an AuthdogError.
func IsAuthdogError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
