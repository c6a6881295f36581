package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/healthlit/internal/logger"
)

var (
	// ErrNoParentFound is returned when a meal or measurement has no daily log to attach to
	ErrNoParentFound = stderrors.New("no daily log found")
	// ErrValidation marks input rejected at the form/flag boundary
	ErrValidation = stderrors.New("validation failed")
	// ErrStoreFailure marks an underlying read or write failure
	ErrStoreFailure = stderrors.New("store failure")
)

// NoParentError carries the date that failed parent resolution.
type NoParentError struct {
	Date string
}

func (e *NoParentError) Error() string {
	return fmt.Sprintf("no daily log found for date %s", e.Date)
}

func (e *NoParentError) Is(target error) bool { return target == ErrNoParentFound }

// NoParent builds the error returned by parent resolution for date.
func NoParent(date string) error {
	return &NoParentError{Date: date}
}

// ValidationError reports a field outside its declared range or enum.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// StoreError wraps a storage-level failure with the operation that hit it.
type StoreError struct {
	Op    string
	Table string
	ID    int64
	Err   error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Table, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreFailure }

// Store wraps err as a StoreError. A nil err stays nil.
func Store(op, table string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Table: table, ID: id, Err: err}
}

// Is re-exports errors.Is so callers need a single import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
