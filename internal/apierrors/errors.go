package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is the sanitized error shape every handler answers with.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	cause      error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Machine readable error codes.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeForbidden        = "FORBIDDEN"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeUpstreamTimeout  = "UPSTREAM_TIMEOUT"
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternalError    = "INTERNAL_ERROR"
	CodePageNotPermitted = "PAGE_NOT_PERMITTED"
	CodeInvalidShare     = "INVALID_SHARE_TOKEN"
	CodeShareViewLimit   = "SHARE_VIEW_LIMIT_REACHED"
	CodeInviteUsed       = "INVITE_ALREADY_USED"
	CodeInvalidInvite    = "INVALID_INVITE"
	CodeBadCSV           = "BAD_CSV_FORMAT"
	CodeEmailExists      = "EMAIL_EXISTS"
)

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimited, Message: message}
}

func GatewayTimeout(message string, cause error) *APIError {
	return &APIError{StatusCode: http.StatusGatewayTimeout, Code: CodeUpstreamTimeout, Message: message, cause: cause}
}

func BadGateway(message string, cause error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: CodeUpstreamError, Message: message, cause: cause}
}

// InternalError never exposes internal details to the client.
func InternalError(cause error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		cause:      cause,
	}
}
