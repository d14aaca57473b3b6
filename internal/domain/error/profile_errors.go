// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Financial profile domain errors.
var (
	// ErrProfileNotFound is returned when a user has no financial profile yet.
	ErrProfileNotFound = errors.New("financial profile not found")

	// ErrInvalidMonthlyIncome is returned when the declared monthly income is not a valid amount.
	ErrInvalidMonthlyIncome = errors.New("invalid monthly income")

	// ErrInvalidHabitWeight is returned when a habit weight is negative.
	ErrInvalidHabitWeight = errors.New("habit weights must not be negative")

	// ErrInvalidFixedExpense is returned when a fixed expense amount is negative.
	ErrInvalidFixedExpense = errors.New("fixed expenses must not be negative")
)

// ProfileErrorCode defines error codes for financial profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProfileNotFound      ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidMonthlyIncome ProfileErrorCode = "PRF-010002"
	ErrCodeInvalidHabitWeight   ProfileErrorCode = "PRF-010003"
	ErrCodeInvalidFixedExpense  ProfileErrorCode = "PRF-010004"
	ErrCodeMissingProfileFields ProfileErrorCode = "PRF-010005"
)

// ProfileError represents a financial profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
