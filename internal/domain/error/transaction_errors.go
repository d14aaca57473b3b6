// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionDate is returned when the date is missing or malformed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrUnauthorizedTransactionAccess is returned when a user tries to access another user's transaction.
	ErrUnauthorizedTransactionAccess = errors.New("unauthorized access to transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound           TransactionErrorCode = "TRX-010001"
	ErrCodeInvalidTransactionAmount      TransactionErrorCode = "TRX-010002"
	ErrCodeInvalidTransactionDate        TransactionErrorCode = "TRX-010003"
	ErrCodeUnauthorizedTransactionAccess TransactionErrorCode = "TRX-010004"
	ErrCodeMissingTransactionFields      TransactionErrorCode = "TRX-010005"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
