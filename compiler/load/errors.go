package load

import (
	"errors"
	"strings"
)

// Sentinel errors for the document layer.
var (
	// ErrUnknownFormat is returned when a document format cannot be
	// determined from a path or is not supported.
	ErrUnknownFormat = errors.New("scriba: unknown document format")

	// ErrInvalidDocument is the sentinel matched by all DecodeError values.
	ErrInvalidDocument = errors.New("scriba: invalid model document")
)

// DecodeError reports a document that cannot be parsed or mapped onto the
// schema model. Path names the position inside the document that caused the
// failure; it is empty for whole-document parse failures.
type DecodeError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("scriba: invalid model document")
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's sentinel.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NewDecodeError creates a DecodeError for the given document position.
func NewDecodeError(path, reason string, cause error) *DecodeError {
	return &DecodeError{Path: path, Reason: reason, Cause: cause}
}

// IsDecodeError reports whether err is a DecodeError.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
