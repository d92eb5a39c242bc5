package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Each concrete error type below unwraps to exactly one of these,
// which is what the HTTP boundary switches on when picking a status code.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrObjectAlreadyExists  = errors.New("object already exists")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsRequired      = errors.New("value is required")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAccessDenied         = errors.New("access denied")
)

// sanitize collapses newlines so error messages stay single-line
// in logs and HTTP payloads.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a lookup by identifier produced no result.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates that a write collided with a uniqueness
// constraint, such as a duplicate account email or tracking number.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without an underlying cause.
func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping an underlying cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, value is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.Value))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ValueIsInvalidError indicates that a supplied value is malformed or outside
// its allowed set.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AuthenticationError indicates that the caller's credentials could not be
// verified. The message is user-facing: unknown email and wrong password
// carry distinct messages on purpose, both behind the same status code.
type AuthenticationError struct {
	Message string
	Cause   error
}

// NewAuthenticationError creates an AuthenticationError without an underlying cause.
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// NewAuthenticationErrorWithCause creates an AuthenticationError wrapping an underlying cause.
func NewAuthenticationErrorWithCause(message string, cause error) *AuthenticationError {
	return &AuthenticationError{Message: message, Cause: cause}
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrAuthenticationFailed, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAuthenticationFailed, e.Message))
}

func (e *AuthenticationError) Unwrap() error {
	return ErrAuthenticationFailed
}

// AccessDeniedError indicates that a verified identity attempted an operation
// its role does not permit.
type AccessDeniedError struct {
	Role      string
	Operation string
	Cause     error
}

// NewAccessDeniedError creates an AccessDeniedError without an underlying cause.
func NewAccessDeniedError(role string, operation string) *AccessDeniedError {
	return &AccessDeniedError{Role: role, Operation: operation}
}

// NewAccessDeniedErrorWithCause creates an AccessDeniedError wrapping an underlying cause.
func NewAccessDeniedErrorWithCause(role string, operation string, cause error) *AccessDeniedError {
	return &AccessDeniedError{Role: role, Operation: operation, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed to %s (cause: %s)",
			ErrAccessDenied, e.Role, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed to %s", ErrAccessDenied, e.Role, e.Operation))
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
