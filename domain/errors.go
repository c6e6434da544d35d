package domain

import (
	"fmt"
	"strings"
)

type ErrorCode string

const (
	ErrCodeUnauthenticated      ErrorCode = "unauthenticated"
	ErrCodeInvalidToken         ErrorCode = "invalid_token"
	ErrCodeMissingField         ErrorCode = "missing_field"
	ErrCodeEmptyText            ErrorCode = "empty_text"
	ErrCodeTextTooLong          ErrorCode = "text_too_long"
	ErrCodeInvalidVoice         ErrorCode = "invalid_voice"
	ErrCodeInvalidCredentials   ErrorCode = "invalid_credentials"
	ErrCodeSignupRejected       ErrorCode = "signup_rejected"
	ErrCodeServiceNotConfigured ErrorCode = "service_not_configured"
	ErrCodeRateLimited          ErrorCode = "rate_limited"
	ErrCodeServiceMisconfigured ErrorCode = "service_misconfigured"
	ErrCodeSynthesisFailed      ErrorCode = "synthesis_failed"
	ErrCodeUnexpected           ErrorCode = "unexpected_error"
)

// Error carries a taxonomy code plus a message that is safe to show to the
// caller. Provider-internal detail never goes here; it belongs in logs.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUnauthenticated = &Error{Code: ErrCodeUnauthenticated, Message: "Authorization token required"}
	ErrInvalidToken    = &Error{Code: ErrCodeInvalidToken, Message: "Invalid or expired token"}

	ErrMissingText = &Error{Code: ErrCodeMissingField, Message: "Text is required"}
	ErrEmptyText   = &Error{Code: ErrCodeEmptyText, Message: "Text cannot be empty"}

	ErrMissingCredentials = &Error{Code: ErrCodeMissingField, Message: "Email and password are required"}
	ErrWeakPassword       = &Error{Code: ErrCodeMissingField, Message: "Password must be at least 6 characters"}

	ErrServiceNotConfigured = &Error{Code: ErrCodeServiceNotConfigured, Message: "TTS service is not configured. Please contact support."}
	ErrRateLimited          = &Error{Code: ErrCodeRateLimited, Message: "Rate limit exceeded. Please try again in a moment."}
	ErrServiceMisconfigured = &Error{Code: ErrCodeServiceMisconfigured, Message: "API configuration error. Please contact support."}
	ErrSynthesisFailed      = &Error{Code: ErrCodeSynthesisFailed, Message: "Failed to generate audio. Please try again."}

	ErrUnexpected = &Error{Code: ErrCodeUnexpected, Message: "Something went wrong. Please try again."}
)

func NewTextTooLongError(limit int) *Error {
	return &Error{
		Code:    ErrCodeTextTooLong,
		Message: fmt.Sprintf("Text exceeds maximum length of %d characters", limit),
	}
}

func NewInvalidVoiceError(validIDs []string) *Error {
	return &Error{
		Code:    ErrCodeInvalidVoice,
		Message: "Invalid voice. Choose from: " + strings.Join(validIDs, ", "),
	}
}

func NewInvalidCredentialsError(message string) *Error {
	return &Error{Code: ErrCodeInvalidCredentials, Message: message}
}

func NewSignupRejectedError(message string) *Error {
	return &Error{Code: ErrCodeSignupRejected, Message: message}
}
