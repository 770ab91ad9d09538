package scheduling

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed date or datetime strings in a request.
// Wrap it with the offending value; detect it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// NotAvailableError reports a requested time outside the doctor's open
// ranges, or a day with no open ranges at all.
type NotAvailableError struct {
	Message string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("notAvailable: %s", e.Message)
}

// ConflictError reports a slot occupied by another pending or confirmed
// appointment, detected either pre-write or by the post-write race check.
// Callers should offer "pick another time" rather than "doctor unavailable".
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// StorageError wraps data-store failures (connectivity, timeout). The
// scheduling core never retries these; retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
