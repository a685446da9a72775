package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrWriteConflict     = errors.New("write conflict")
	ErrDuplicateKey      = errors.New("duplicate key")
)

// sanitize collapses newlines so error messages stay on a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value does not satisfy
// validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates that a requested order state change is not
// allowed from the current status. Reason carries the business explanation
// that is surfaced to the client.
type InvalidTransitionError struct {
	Current   string
	Requested string
	Reason    string
	Cause     error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the denied change.
func NewInvalidTransitionError(current, requested, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Requested: requested, Reason: reason}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError with an underlying cause.
func NewInvalidTransitionErrorWithCause(current, requested, reason string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Requested: requested, Reason: reason, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (reason: %s) (cause: %s)",
			ErrInvalidTransition, e.Current, e.Requested, sanitize(e.Reason), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s -> %s (reason: %s)", ErrInvalidTransition, e.Current, e.Requested, sanitize(e.Reason))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// WriteConflictError indicates that a conditional write was rejected because
// the record was modified concurrently. The caller should re-read the current
// state and retry the operation.
type WriteConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewWriteConflictError creates a WriteConflictError for the given identifier.
func NewWriteConflictError(paramName string, id any) *WriteConflictError {
	return &WriteConflictError{ParamName: paramName, ID: id}
}

// NewWriteConflictErrorWithCause creates a WriteConflictError with an underlying cause.
func NewWriteConflictErrorWithCause(paramName string, id any, cause error) *WriteConflictError {
	return &WriteConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *WriteConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrWriteConflict, e.ParamName, e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrWriteConflict, e.ID)
}

func (e *WriteConflictError) Unwrap() error {
	return ErrWriteConflict
}

// DuplicateKeyError indicates that a record with the same key already exists.
type DuplicateKeyError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewDuplicateKeyError creates a DuplicateKeyError for the given identifier.
func NewDuplicateKeyError(paramName string, id any) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, ID: id}
}

// NewDuplicateKeyErrorWithCause creates a DuplicateKeyError with an underlying cause.
func NewDuplicateKeyErrorWithCause(paramName string, id any, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrDuplicateKey, e.ParamName, e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateKey, e.ID)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}
