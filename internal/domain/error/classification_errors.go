// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Classification domain errors.
var (
	// ErrInvalidIncome is returned when the income value cannot be parsed as a decimal amount.
	ErrInvalidIncome = errors.New("invalid income amount")

	// ErrMissingCountry is returned when no country is available for classification.
	ErrMissingCountry = errors.New("country is required")
)

// ClassificationErrorCode defines error codes for income classification errors.
// Format: CLS-XXYYYY where XX is category and YYYY is specific error.
type ClassificationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidIncome  ClassificationErrorCode = "CLS-010001"
	ErrCodeMissingCountry ClassificationErrorCode = "CLS-010002"
)

// ClassificationError represents a classification error with code and message.
type ClassificationError struct {
	Code    ClassificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// NewClassificationError creates a new ClassificationError with the given code and message.
func NewClassificationError(code ClassificationErrorCode, message string, err error) *ClassificationError {
	return &ClassificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
