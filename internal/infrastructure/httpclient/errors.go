package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies processor transport errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates the request deadline passed before a response arrived.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, TLS, ...).
	ErrCodeConnection
	// ErrCodeAuthentication indicates rejected API keys (401).
	ErrCodeAuthentication
	// ErrCodeAuthorization indicates keys without access to the resource (403).
	ErrCodeAuthorization
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeUpgradeRequired indicates the API version is no longer supported (426).
	ErrCodeUpgradeRequired
	// ErrCodeTooManyRequests indicates rate limiting (429).
	ErrCodeTooManyRequests
	// ErrCodeServer indicates a processor-side failure (500).
	ErrCodeServer
	// ErrCodeServiceUnavailable indicates maintenance or overload (503).
	ErrCodeServiceUnavailable
	// ErrCodeUnexpected covers any other non-2xx status and undecodable bodies.
	ErrCodeUnexpected
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeAuthentication:
		return "authentication"
	case ErrCodeAuthorization:
		return "authorization"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeUpgradeRequired:
		return "upgrade_required"
	case ErrCodeTooManyRequests:
		return "too_many_requests"
	case ErrCodeServer:
		return "server"
	case ErrCodeServiceUnavailable:
		return "service_unavailable"
	default:
		return "unexpected"
	}
}

// Error is a classified processor transport error.
type Error struct {
	// StatusCode is the HTTP status (0 when no response was received).
	StatusCode int
	Code       ErrorCode
	Message    string
	// Body is the raw response body, if any.
	Body []byte
	Err  error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the response status, 0 for connection-level failures.
func (e *Error) HTTPStatusCode() int {
	return e.StatusCode
}

// Temporary reports whether the request never reached a response.
func (e *Error) Temporary() bool {
	return e.Code == ErrCodeTimeout || e.Code == ErrCodeConnection
}

func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

func NewUnexpectedError(statusCode int, body []byte, err error) *Error {
	return &Error{StatusCode: statusCode, Code: ErrCodeUnexpected, Message: err.Error(), Body: body, Err: err}
}

// ClassifyStatusCode converts a non-success status into an *Error. It returns nil for
// 2xx and for 422, whose body carries validation errors the caller decodes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	var code ErrorCode
	switch {
	case statusCode >= 200 && statusCode < 300, statusCode == http.StatusUnprocessableEntity:
		return nil
	case statusCode == http.StatusUnauthorized:
		code = ErrCodeAuthentication
	case statusCode == http.StatusForbidden:
		code = ErrCodeAuthorization
	case statusCode == http.StatusNotFound:
		code = ErrCodeNotFound
	case statusCode == http.StatusUpgradeRequired:
		code = ErrCodeUpgradeRequired
	case statusCode == http.StatusTooManyRequests:
		code = ErrCodeTooManyRequests
	case statusCode == http.StatusInternalServerError:
		code = ErrCodeServer
	case statusCode == http.StatusServiceUnavailable:
		code = ErrCodeServiceUnavailable
	default:
		code = ErrCodeUnexpected
	}
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}
