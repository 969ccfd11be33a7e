package errors

import "fmt"

// ValidationError is a missing or malformed required field. Nothing is mutated
// when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Required builds the common "field is required" validation error.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

// StorageQuotaError means every cull-and-retry step failed; the in-memory state
// is intact but not durable.
type StorageQuotaError struct {
	Attempts int
}

func (e *StorageQuotaError) Error() string {
	return fmt.Sprintf("storage full after %d attempts, delete old data to continue saving", e.Attempts)
}

func (e *StorageQuotaError) Unwrap() error { return ErrQuotaExceeded }

// StorageError wraps any non-quota persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s storage: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ImportFormatError rejects a backup file that is not a valid export.
type ImportFormatError struct {
	Reason string
	Err    error
}

func (e *ImportFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup file: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid backup file: %s", e.Reason)
}

func (e *ImportFormatError) Unwrap() error { return e.Err }

// ExternalServiceError is a failed call to the text-improvement proxy.
type ExternalServiceError struct {
	Status  int // HTTP status, 0 for transport failures
	Message string
	Details string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "text improvement service failed"
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
