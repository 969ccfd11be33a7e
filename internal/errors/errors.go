package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/hurryup/internal/logger"
)

var (
	// ErrQuotaExceeded is returned by a storage medium when a write does not fit.
	ErrQuotaExceeded = stderrors.New("storage quota exceeded")
	// ErrNotFound is returned when a stored document or record does not exist.
	ErrNotFound = stderrors.New("not found")
)

// Format formats an error message with a consistent "Error: " prefix.
// Validation and external-service errors carry their own user-facing text.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1. Errors the user
// can act on are logged as warnings.
func Fatal(err error) {
	if err != nil {
		if IsRecoverable(err) {
			logger.Warn("Command execution failed", "error", err)
		} else {
			logger.Error("Command execution failed", "error", err)
		}
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}

// IsRecoverable reports whether err leaves the application usable: the user can
// fix their input, free space or retry the call.
func IsRecoverable(err error) bool {
	var (
		v  *ValidationError
		q  *StorageQuotaError
		s  *StorageError
		im *ImportFormatError
		ex *ExternalServiceError
	)
	return stderrors.As(err, &v) || stderrors.As(err, &q) || stderrors.As(err, &s) ||
		stderrors.As(err, &im) || stderrors.As(err, &ex)
}
