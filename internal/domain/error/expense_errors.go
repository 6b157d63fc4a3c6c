// Package error defines domain-specific errors for the forecast service.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrMissingExpenseFields is returned when required fields are absent.
	ErrMissingExpenseFields = errors.New("name, amount and date are required")

	// ErrInvalidCreditTerms is returned when a credit expense is created
	// without a total amount or with a zero installment count.
	ErrInvalidCreditTerms = errors.New("credit expenses require total_credit_amount and installments >= 1")
)

// ExpenseErrorCode defines error codes for expense errors.
type ExpenseErrorCode string

const (
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidCreditTerms   ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-020001"
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
