// Package error defines domain-specific errors for the forecast service.
package error

import "errors"

// Forecast domain errors.
var (
	// ErrMissingUser is returned when a forecast operation is invoked
	// without a user. This is the only unrecoverable input condition.
	ErrMissingUser = errors.New("user is required")

	// ErrInvalidForecastWindow is returned when months_back or
	// months_forward is negative.
	ErrInvalidForecastWindow = errors.New("months_back and months_forward must not be negative")

	// ErrForecastNotFound is returned when no forecast row exists for a month.
	ErrForecastNotFound = errors.New("forecast not found")
)

// ForecastErrorCode defines error codes for forecast errors.
// Format: FCT-XXYYYY where XX is category and YYYY is specific error.
type ForecastErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingUser           ForecastErrorCode = "FCT-010001"
	ErrCodeInvalidWindow         ForecastErrorCode = "FCT-010002"
	ErrCodeInvalidSuggestionSpan ForecastErrorCode = "FCT-010003"

	// Not found errors (02XXXX)
	ErrCodeForecastNotFound ForecastErrorCode = "FCT-020001"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited ForecastErrorCode = "FCT-030001"

	// Internal errors (99XXXX)
	ErrCodeForecastInternalError ForecastErrorCode = "FCT-990001"
)

// ForecastError represents a forecast error with code and message.
type ForecastError struct {
	Code    ForecastErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ForecastError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError creates a new ForecastError with the given code and message.
func NewForecastError(code ForecastErrorCode, message string, err error) *ForecastError {
	return &ForecastError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
