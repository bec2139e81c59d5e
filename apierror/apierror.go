// Package apierror defines the closed set of errors surfaced by the SDK.
// Every failure, whether an HTTP status, a transport fault, or a local
// precondition, is classified into exactly one Kind.
package apierror

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// Kind identifies a class of SDK error.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthentication
	KindPaymentRequired
	KindForbidden
	KindNotFound
	KindConflict
	KindServer
	KindNetwork
)

// Symbolic code strings, stable across releases.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodePaymentRequired = "PAYMENT_REQUIRED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeServerError     = "SERVER_ERROR"
	CodeNetworkError    = "NETWORK_ERROR"
	CodeTimeout         = "TIMEOUT"
	CodeUnknown         = "UNKNOWN"
)

// Error is a classified SDK error.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int    // HTTP status, 0 for network errors, absent for unknown
	Code       string // symbolic code string
	Timeout    bool   // set only on network errors caused by a timeout
	cause      error
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// IsRecoverable reports whether retrying the failed operation may help.
// Only network and server errors qualify.
func (e *Error) IsRecoverable() bool {
	return e.Kind == KindNetwork || e.Kind == KindServer
}

// UserMessage returns a stable, non-technical message suitable for display.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindAuthentication:
		return "Authentication failed. Please check your API key."
	case KindPaymentRequired:
		return "This feature requires a subscription upgrade."
	case KindForbidden:
		return "You don't have permission to perform this action."
	case KindNotFound:
		return "The requested item was not found."
	case KindConflict, KindValidation:
		return e.Message
	case KindNetwork:
		if e.Timeout {
			return "Request timed out. Please try again."
		}
		return "Network error. Please check your connection."
	case KindServer:
		return "Server error. Please try again later."
	}
	return "An unexpected error occurred."
}

// Constructors. Each applies the default message when msg is empty.

func NewValidation(msg string) *Error {
	if msg == "" {
		msg = "Validation failed"
	}
	return &Error{Kind: KindValidation, Message: msg, StatusCode: 400, Code: CodeBadRequest}
}

func NewAuthentication(msg string) *Error {
	if msg == "" {
		msg = "Invalid or missing API key"
	}
	return &Error{Kind: KindAuthentication, Message: msg, StatusCode: 401, Code: CodeUnauthorized}
}

func NewPaymentRequired(msg string) *Error {
	if msg == "" {
		msg = "Subscription upgrade required"
	}
	return &Error{Kind: KindPaymentRequired, Message: msg, StatusCode: 402, Code: CodePaymentRequired}
}

func NewForbidden(msg string) *Error {
	if msg == "" {
		msg = "Access denied"
	}
	return &Error{Kind: KindForbidden, Message: msg, StatusCode: 403, Code: CodeForbidden}
}

func NewNotFound(msg string) *Error {
	if msg == "" {
		msg = "Resource not found"
	}
	return &Error{Kind: KindNotFound, Message: msg, StatusCode: 404, Code: CodeNotFound}
}

func NewConflict(msg string) *Error {
	if msg == "" {
		msg = "Conflict with current state"
	}
	return &Error{Kind: KindConflict, Message: msg, StatusCode: 409, Code: CodeConflict}
}

func NewServer(msg string, statusCode int) *Error {
	if msg == "" {
		msg = "Internal server error"
	}
	if statusCode == 0 {
		statusCode = 500
	}
	return &Error{Kind: KindServer, Message: msg, StatusCode: statusCode, Code: CodeServerError}
}

func NewNetwork(msg string, timeout bool) *Error {
	if msg == "" {
		msg = "Network error"
	}
	code := CodeNetworkError
	if timeout {
		code = CodeTimeout
	}
	return &Error{Kind: KindNetwork, Message: msg, Code: code, Timeout: timeout}
}

func NewUnknown(msg string, cause error) *Error {
	if msg == "" {
		msg = "An unknown error occurred"
	}
	return &Error{Kind: KindUnknown, Message: msg, Code: CodeUnknown, cause: cause}
}

// FromStatusCode maps an HTTP status to a classified error.
func FromStatusCode(statusCode int, msg string) *Error {
	switch {
	case statusCode == 400:
		return NewValidation(msg)
	case statusCode == 401:
		return NewAuthentication(msg)
	case statusCode == 402:
		return NewPaymentRequired(msg)
	case statusCode == 403:
		return NewForbidden(msg)
	case statusCode == 404:
		return NewNotFound(msg)
	case statusCode == 409:
		return NewConflict(msg)
	case statusCode >= 500 && statusCode <= 599:
		return NewServer(msg, statusCode)
	}
	return NewUnknown(msg, nil)
}

// FromError classifies an arbitrary error. An already-classified error is
// returned unchanged.
func FromError(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewNetwork("Request timed out", true)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewNetwork("Request timed out", true)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NewNetwork("Unable to reach server", false)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return NewNetwork("Connection failed", false)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return NewNetwork(opErr.Error(), false)
	}

	return NewUnknown(err.Error(), err)
}
