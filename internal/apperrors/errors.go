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

// ErrForbidden indicates that the caller is not permitted to perform the action.
// State is left unchanged; callers surface it as a recoverable "not permitted" outcome.
var ErrForbidden = errors.New("action not permitted")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the action is blocked by dependent data,
// e.g. deleting a safe that still has transactions.
var ErrConflict = errors.New("resource is in use")

// ErrConsistency indicates the cached safe balance could not be recomputed
// after a transaction write. The surrounding database transaction is rolled back;
// running a balance recompute for the safe restores the cached value.
var ErrConsistency = errors.New("balance recomputation failed")

// AppError carries an HTTP-ish status code alongside an underlying error.
// Repositories use it for infrastructure failures.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap allows errors.Is / errors.As to see the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}
