package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrForbidden indicates the user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInsufficientBalance indicates a withdrawal would drive a box balance negative.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrNoOpenCashBox indicates the user has no open cash box to post against.
var ErrNoOpenCashBox = errors.New("no open cash box for user")

// AppError wraps an underlying error with an HTTP-ish status code and a message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// InsufficientBalanceError carries the shortfall context needed by callers to
// build a user-facing message and to decide whether to compensate the primary
// business write.
type InsufficientBalanceError struct {
	BoxName   string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance in %s: available %s, required %s",
		e.BoxName, e.Available.String(), e.Required.String())
}

// Unwrap lets errors.Is(err, ErrInsufficientBalance) match.
func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// NewInsufficientBalanceError creates an InsufficientBalanceError for the named box.
func NewInsufficientBalanceError(boxName string, available, required decimal.Decimal) *InsufficientBalanceError {
	return &InsufficientBalanceError{BoxName: boxName, Available: available, Required: required}
}
