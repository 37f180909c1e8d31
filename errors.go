package scriba

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for model preconditions.
var (
	// ErrInvalidNode is returned when rendering reaches a model node it has
	// no rule for.
	ErrInvalidNode = errors.New("scriba: invalid node")

	// ErrEmptyConditional is returned when a conditional wrapper carries no
	// content for any branch it could emit.
	ErrEmptyConditional = errors.New("scriba: conditional without content")

	// ErrUnknownCaseStyle is returned when an identifier is converted to a
	// case style the casing rules do not define.
	ErrUnknownCaseStyle = errors.New("scriba: unknown case style")
)

// InvalidNodeError represents an error when rendering reaches a model node
// it has no rule for.
type InvalidNodeError struct {
	kind string
	node any // Optional: the offending node value
}

// Error returns the error string.
func (e *InvalidNodeError) Error() string {
	if e.node != nil {
		return fmt.Sprintf("scriba: no rendering rule for %s %T", e.kind, e.node)
	}
	return fmt.Sprintf("scriba: no rendering rule for %s", e.kind)
}

// Is reports whether the target error matches InvalidNodeError.
// This allows errors.Is(invalidNodeErr, ErrInvalidNode) to return true.
func (e *InvalidNodeError) Is(err error) bool {
	return err == ErrInvalidNode
}

// Kind returns the node category (e.g. "declaration", "class member").
func (e *InvalidNodeError) Kind() string {
	return e.kind
}

// Node returns the offending node value, if available.
func (e *InvalidNodeError) Node() any {
	return e.node
}

// NewInvalidNodeError returns a new InvalidNodeError for the given node category.
func NewInvalidNodeError(kind string) *InvalidNodeError {
	return &InvalidNodeError{kind: kind}
}

// NewInvalidNodeErrorWithNode returns a new InvalidNodeError carrying the node value.
func NewInvalidNodeErrorWithNode(kind string, node any) *InvalidNodeError {
	return &InvalidNodeError{kind: kind, node: node}
}

// IsInvalidNode returns true if the error is an InvalidNodeError.
func IsInvalidNode(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidNodeError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidNode)
}

// EmptyConditionalError represents an error when a conditional wrapper has
// nothing to emit: either no branch at all, or an absent condition combined
// with an absent primary branch.
type EmptyConditionalError struct {
	context string
	symbol  string // Conditional symbol, empty when no condition was set
}

// Error returns the error string.
func (e *EmptyConditionalError) Error() string {
	if e.symbol != "" {
		return fmt.Sprintf("scriba: conditional %s on %q has no branch to emit", e.context, e.symbol)
	}
	return fmt.Sprintf("scriba: unconditional %s has no primary content", e.context)
}

// Is reports whether the target error matches EmptyConditionalError.
// This allows errors.Is(emptyConditionalErr, ErrEmptyConditional) to return true.
func (e *EmptyConditionalError) Is(err error) bool {
	return err == ErrEmptyConditional
}

// Context returns the emission context (e.g. "uses reference", "attribute").
func (e *EmptyConditionalError) Context() string {
	return e.context
}

// Symbol returns the conditional symbol, or "" when no condition was set.
func (e *EmptyConditionalError) Symbol() string {
	return e.symbol
}

// NewEmptyConditionalError returns a new EmptyConditionalError for the given
// emission context.
func NewEmptyConditionalError(context string) *EmptyConditionalError {
	return &EmptyConditionalError{context: context}
}

// NewEmptyConditionalErrorWithSymbol returns a new EmptyConditionalError with
// the conditional symbol that had no branches.
func NewEmptyConditionalErrorWithSymbol(context, symbol string) *EmptyConditionalError {
	return &EmptyConditionalError{context: context, symbol: symbol}
}

// IsEmptyConditional returns true if the error is an EmptyConditionalError.
func IsEmptyConditional(err error) bool {
	if err == nil {
		return false
	}
	var e *EmptyConditionalError
	return errors.As(err, &e) || errors.Is(err, ErrEmptyConditional)
}

// UnknownCaseStyleError represents an error when an identifier is converted
// to a case style the casing rules do not define.
type UnknownCaseStyleError struct {
	style string
}

// Error returns the error string.
func (e *UnknownCaseStyleError) Error() string {
	return fmt.Sprintf("scriba: unknown case style %s", e.style)
}

// Is reports whether the target error matches UnknownCaseStyleError.
// This allows errors.Is(unknownCaseStyleErr, ErrUnknownCaseStyle) to return true.
func (e *UnknownCaseStyleError) Is(err error) bool {
	return err == ErrUnknownCaseStyle
}

// Style returns the textual form of the unknown style.
func (e *UnknownCaseStyleError) Style() string {
	return e.style
}

// NewUnknownCaseStyleError returns a new UnknownCaseStyleError for the given style.
func NewUnknownCaseStyleError(style string) *UnknownCaseStyleError {
	return &UnknownCaseStyleError{style: style}
}

// IsUnknownCaseStyle returns true if the error is an UnknownCaseStyleError.
func IsUnknownCaseStyle(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownCaseStyleError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownCaseStyle)
}

// Recover converts a panic raised by a rendering precondition violation back
// into the error it carries. It is intended to be deferred by the public
// entry points:
//
//	defer scriba.Recover(&err)
//
// Panics carrying non-error values are wrapped; nil panics are ignored.
func Recover(err *error) {
	switch r := recover().(type) {
	case nil:
	case error:
		*err = r
	default:
		*err = fmt.Errorf("scriba: unexpected panic: %v", r)
	}
}
