package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidRuleConfiguration indicates a tip-out rule that cannot be evaluated:
// an amount with zero or two variants, a distribution without a target, or a
// destination department whose category distribution does not sum to 100.
var ErrInvalidRuleConfiguration = errors.New("invalid rule configuration")

// ErrNoEligibleRecipients marks an individual-selection rule that resolved to nobody.
// The engine skips such rules instead of failing; the error exists so the skip
// can be reported and matched.
var ErrNoEligibleRecipients = errors.New("no eligible recipients")

// ErrZeroHoursPool indicates a pool allocation with no hours to distribute against.
var ErrZeroHoursPool = errors.New("pool has zero total hours")

// ErrNoPoolRecipients indicates a pool with money but nobody to receive it.
var ErrNoPoolRecipients = errors.New("pool has no recipients")

// ErrDateRangeInvalid indicates a start date after the end date.
var ErrDateRangeInvalid = errors.New("invalid date range")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Storage adapters use it for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
