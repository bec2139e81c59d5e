package apierror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
)

func TestFromStatusCode(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
		code   string
	}{
		{400, KindValidation, CodeBadRequest},
		{401, KindAuthentication, CodeUnauthorized},
		{402, KindPaymentRequired, CodePaymentRequired},
		{403, KindForbidden, CodeForbidden},
		{404, KindNotFound, CodeNotFound},
		{409, KindConflict, CodeConflict},
		{500, KindServer, CodeServerError},
		{503, KindServer, CodeServerError},
		{599, KindServer, CodeServerError},
		{418, KindUnknown, CodeUnknown},
		{301, KindUnknown, CodeUnknown},
	}

	for _, tt := range tests {
		err := FromStatusCode(tt.status, "boom")
		if err.Kind != tt.kind {
			t.Errorf("status %d: kind = %v, want %v", tt.status, err.Kind, tt.kind)
		}
		if err.Code != tt.code {
			t.Errorf("status %d: code = %q, want %q", tt.status, err.Code, tt.code)
		}
		if err.Message != "boom" {
			t.Errorf("status %d: message = %q", tt.status, err.Message)
		}
	}
}

func TestFromStatusCodeKeepsServerStatus(t *testing.T) {
	err := FromStatusCode(502, "bad gateway")
	if err.StatusCode != 502 {
		t.Errorf("StatusCode = %d, want 502", err.StatusCode)
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    Kind
		timeout bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, KindNetwork, true},
		{"net timeout", timeoutError{}, KindNetwork, true},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "example.com"}, KindNetwork, false},
		{"connection refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), KindNetwork, false},
		{"op error", &net.OpError{Op: "read", Err: errors.New("reset")}, KindNetwork, false},
		{"plain error", errors.New("weird"), KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			if got.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Timeout != tt.timeout {
				t.Errorf("timeout = %v, want %v", got.Timeout, tt.timeout)
			}
		})
	}
}

func TestFromErrorAlreadyClassified(t *testing.T) {
	original := NewConflict("already voted")
	if got := FromError(original); got != original {
		t.Error("re-classifying a classified error should return it unchanged")
	}

	wrapped := fmt.Errorf("call failed: %w", original)
	if got := FromError(wrapped); got != original {
		t.Error("classification should unwrap to the original error")
	}
}

func TestFromErrorWrapsCause(t *testing.T) {
	cause := errors.New("underlying")
	err := FromError(cause)
	if !errors.Is(err, cause) {
		t.Error("unknown error should wrap its cause")
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		err         *Error
		recoverable bool
	}{
		{NewNetwork("", false), true},
		{NewNetwork("", true), true},
		{NewServer("", 500), true},
		{NewValidation(""), false},
		{NewAuthentication(""), false},
		{NewPaymentRequired(""), false},
		{NewForbidden(""), false},
		{NewNotFound(""), false},
		{NewConflict(""), false},
		{NewUnknown("", nil), false},
	}

	for _, tt := range tests {
		if got := tt.err.IsRecoverable(); got != tt.recoverable {
			t.Errorf("%s: IsRecoverable = %v, want %v", tt.err.Code, got, tt.recoverable)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NewAuthentication(""), "Authentication failed. Please check your API key."},
		{NewPaymentRequired(""), "This feature requires a subscription upgrade."},
		{NewForbidden(""), "You don't have permission to perform this action."},
		{NewNotFound(""), "The requested item was not found."},
		{NewConflict("already voted"), "already voted"},
		{NewValidation("title required"), "title required"},
		{NewNetwork("", true), "Request timed out. Please try again."},
		{NewNetwork("", false), "Network error. Please check your connection."},
		{NewServer("", 500), "Server error. Please try again later."},
		{NewUnknown("", nil), "An unexpected error occurred."},
	}

	for _, tt := range tests {
		if got := tt.err.UserMessage(); got != tt.want {
			t.Errorf("%s: UserMessage = %q, want %q", tt.err.Code, got, tt.want)
		}
	}
}

func TestDefaultMessages(t *testing.T) {
	if got := NewAuthentication("").Error(); got != "Invalid or missing API key" {
		t.Errorf("default authentication message = %q", got)
	}
	if got := NewNetwork("", false).Error(); got != "Network error" {
		t.Errorf("default network message = %q", got)
	}
	if got := NewNetwork("", true).Code; got != CodeTimeout {
		t.Errorf("timeout code = %q, want %q", got, CodeTimeout)
	}
}
