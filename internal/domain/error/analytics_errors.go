// Package error defines domain-specific errors for the insights service.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrEmptyTransactionSet is returned when an operation requires at least one transaction.
	ErrEmptyTransactionSet = errors.New("transaction set is empty")

	// ErrUnparseableDate is returned when a transaction date cannot be parsed.
	ErrUnparseableDate = errors.New("unparseable transaction date")

	// ErrInvalidAmount is returned when a transaction amount is not a valid number.
	ErrInvalidAmount = errors.New("invalid transaction amount")

	// ErrInvalidBudgetAmount is returned when a budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrDuplicateBudgetCategory is returned when two budgets target the same category.
	ErrDuplicateBudgetCategory = errors.New("duplicate budget for category")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyTransactionSet     AnalyticsErrorCode = "ANL-010001"
	ErrCodeUnparseableDate         AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidAmount           AnalyticsErrorCode = "ANL-010003"
	ErrCodeInvalidBudgetAmount     AnalyticsErrorCode = "ANL-010004"
	ErrCodeDuplicateBudgetCategory AnalyticsErrorCode = "ANL-010005"
	ErrCodeInvalidRequestBody      AnalyticsErrorCode = "ANL-010006"

	// Request handling errors (02XXXX)
	ErrCodeRateLimited AnalyticsErrorCode = "ANL-020001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
