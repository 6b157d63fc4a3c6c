// Package error defines domain-specific errors for the forecast service.
package error

import "errors"

// Subscription domain errors.
var (
	// ErrSubscriptionNotFound is returned when a subscription does not exist.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrMissingSubscriptionFields is returned when required fields are absent.
	ErrMissingSubscriptionFields = errors.New("name, amount, frequency and start_date are required")

	// ErrInvalidSubscriptionFrequency is returned when the frequency is not
	// a periodic one (monthly, quarterly, biannual, annual).
	ErrInvalidSubscriptionFrequency = errors.New("frequency must be: monthly, quarterly, biannual or annual")
)

// SubscriptionErrorCode defines error codes for subscription errors.
type SubscriptionErrorCode string

const (
	ErrCodeMissingSubscriptionFields SubscriptionErrorCode = "SUB-010001"
	ErrCodeInvalidFrequency          SubscriptionErrorCode = "SUB-010002"
	ErrCodeSubscriptionNotFound      SubscriptionErrorCode = "SUB-020001"
	ErrCodeSubscriptionInternalError SubscriptionErrorCode = "SUB-990001"
)

// SubscriptionError represents a subscription error with code and message.
type SubscriptionError struct {
	Code    SubscriptionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubscriptionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// NewSubscriptionError creates a new SubscriptionError.
func NewSubscriptionError(code SubscriptionErrorCode, message string, err error) *SubscriptionError {
	return &SubscriptionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
