// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Calendar domain errors.
var (
	// ErrInvalidCalendarMonth is returned when the year/month pair is out of range.
	ErrInvalidCalendarMonth = errors.New("invalid calendar month")

	// ErrCalendarProfileRequired is returned when a calendar is requested for a user without a profile.
	ErrCalendarProfileRequired = errors.New("financial profile required to build calendar")

	// ErrRedistributionInProgress is returned when a redistribution for the same
	// user and month is already running.
	ErrRedistributionInProgress = errors.New("redistribution already in progress for this month")
)

// CalendarErrorCode defines error codes for calendar errors.
// Format: CAL-XXYYYY where XX is category and YYYY is specific error.
type CalendarErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCalendarMonth     CalendarErrorCode = "CAL-010001"
	ErrCodeCalendarProfileRequired  CalendarErrorCode = "CAL-010002"
	// Concurrency errors (02XXXX)
	ErrCodeRedistributionInProgress CalendarErrorCode = "CAL-020001"
)

// CalendarError represents a calendar error with code and message.
type CalendarError struct {
	Code    CalendarErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalendarError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// NewCalendarError creates a new CalendarError with the given code and message.
func NewCalendarError(code CalendarErrorCode, message string, err error) *CalendarError {
	return &CalendarError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
