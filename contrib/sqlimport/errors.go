package sqlimport

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnknownDriver indicates a driver name ImportDB does not support.
	ErrUnknownDriver = errors.New("scriba: unknown sql driver")
	// ErrImportFailed indicates a catalog import failure.
	ErrImportFailed = errors.New("scriba: catalog import failed")
)

// ImportError represents a catalog import failure.
type ImportError struct {
	Driver  string // Driver name the import ran against
	Table   string // Table being read when the failure occurred, "" for catalog-wide failures
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	var b strings.Builder
	b.WriteString("scriba: import error")
	if e.Driver != "" {
		b.WriteString(" (driver: ")
		b.WriteString(e.Driver)
		b.WriteString(")")
	}
	if e.Table != "" {
		b.WriteString(" (table: ")
		b.WriteString(e.Table)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ImportError.
func (e *ImportError) Is(target error) bool {
	return target == ErrImportFailed
}

// NewImportError creates a new ImportError.
func NewImportError(driver, table, message string, cause error) *ImportError {
	return &ImportError{
		Driver:  driver,
		Table:   table,
		Message: message,
		Cause:   cause,
	}
}

// IsImportError reports whether the error is an ImportError.
func IsImportError(err error) bool {
	var importErr *ImportError
	return errors.As(err, &importErr)
}
