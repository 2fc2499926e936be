package errors

import (
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/errors"

	"github.com/google/uuid"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Generic sentinels matched with errors.Is.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request input",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrIntegrityViolation = NewBaseError(
		http.StatusConflict,
		"INTEGRITY_VIOLATION",
		"Referential integrity violated",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	// Catalog
	ErrSkuAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SKU_ALREADY_EXISTS",
		"A product SKU with this code already exists",
		"",
	)

	ErrAttributeInUse = NewBaseError(
		http.StatusConflict,
		"ATTRIBUTE_IN_USE",
		"Attribute type cannot change while SKUs reference it",
		"",
	)

	ErrInvalidReference = NewBaseError(
		http.StatusConflict,
		"INVALID_REFERENCE",
		"Referenced resource does not exist or is still referenced",
		"",
	)

	// Orders and payments
	ErrPaymentAlreadyRecorded = NewBaseError(
		http.StatusConflict,
		"PAYMENT_ALREADY_RECORDED",
		"The order already has a payment",
		"",
	)

	// Users and authentication
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Infrastructure
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NotFoundError reports that a read, update or delete targeted a missing identifier.
type NotFoundError struct {
	entity string
	id     string
}

// NewNotFoundError creates a not-found error for the named entity.
func NewNotFoundError(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{entity: entity, id: id.String()}
}

// NewNotFoundErrorByKey creates a not-found error for a lookup by a non-id key.
func NewNotFoundErrorByKey(entity, key string) *NotFoundError {
	return &NotFoundError{entity: entity, id: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.entity, e.id)
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == error(ErrNotFound)
}

func (e *NotFoundError) HTTPCode() int { return http.StatusNotFound }

func (e *NotFoundError) ErrorCode() string {
	return codeFor(e.entity) + "_NOT_FOUND"
}

func (e *NotFoundError) Message() string {
	return capitalize(e.entity) + " not found"
}

func (e *NotFoundError) Details() string { return e.id }

// Entity returns the entity name the lookup targeted.
func (e *NotFoundError) Entity() string { return e.entity }

// IntegrityViolationError reports a failed cascading-delete step or a
// constraint rejected by the store. Step names the operation that failed.
type IntegrityViolationError struct {
	entity string
	step   string
	err    error
}

// NewIntegrityViolation creates an integrity violation for the given aggregate step.
func NewIntegrityViolation(entity, step string, err error) *IntegrityViolationError {
	return &IntegrityViolationError{entity: entity, step: step, err: err}
}

func (e *IntegrityViolationError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("integrity violation on %s: %s", e.entity, e.step)
	}

	return fmt.Sprintf("integrity violation on %s: %s: %v", e.entity, e.step, e.err)
}

func (e *IntegrityViolationError) Unwrap() error { return e.err }

// Is makes errors.Is(err, ErrIntegrityViolation) hold.
func (e *IntegrityViolationError) Is(target error) bool {
	return target == error(ErrIntegrityViolation)
}

func (e *IntegrityViolationError) HTTPCode() int { return http.StatusConflict }

// ErrorCode prefers the code of a conflict cause such as ErrSkuAlreadyExists.
func (e *IntegrityViolationError) ErrorCode() string {
	var cause AppError
	if errors.As(e.err, &cause) && cause.HTTPCode() == http.StatusConflict {
		return cause.ErrorCode()
	}

	return "INTEGRITY_VIOLATION"
}

func (e *IntegrityViolationError) Message() string {
	return fmt.Sprintf("Could not %s for %s", e.step, e.entity)
}

func (e *IntegrityViolationError) Details() string { return e.step }

// Step returns the name of the failed step.
func (e *IntegrityViolationError) Step() string { return e.step }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

func codeFor(entity string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(entity), " ", "_"))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
