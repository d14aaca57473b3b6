// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Authentication boundary errors. Session management lives outside this
// service; these cover only token validation at the HTTP entrypoint.
var (
	// ErrMissingToken is returned when no access token is provided.
	ErrMissingToken = errors.New("missing access token")

	// ErrInvalidToken is returned when the access token is malformed or expired.
	ErrInvalidToken = errors.New("invalid access token")
)

// AuthErrorCode defines error codes for authentication boundary errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUT-020001"
)
