// Package errors defines the kernel's error taxonomy.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a kernel error. The set is exhaustive per the kernel's
// external interface; callers switch on Kind rather than parsing Error().
type Kind string

const (
	InvalidInput     Kind = "InvalidInput"
	Allocation       Kind = "Allocation"
	DivByZero        Kind = "DivByZero"
	Overflow         Kind = "Overflow"
	NegativeExponent Kind = "NegativeExponent"
	Negative         Kind = "Negative"
	ShapeMismatch    Kind = "ShapeMismatch"
	ParseError       Kind = "ParseError"
	Cancelled        Kind = "Cancelled"
)

// SourceLocation locates a failure within evaluator source text. Zero value
// means "not applicable" (most kernel errors have no source text of their
// own).
type SourceLocation struct {
	Line   int
	Column int
}

// Error is the kernel's single error type. It carries the failing
// operation's name and, where meaningful, the index of the offending
// argument, instead of synthesizing a message string at every call site.
type Error struct {
	Kind     Kind
	Op       string
	Arg      int // -1 when not applicable
	Message  string
	Location SourceLocation
	cause    error
}

func (e *Error) Error() string {
	if e.Arg >= 0 {
		return fmt.Sprintf("%s: %s (arg %d): %s", e.Kind, e.Op, e.Arg, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error with no particular argument in mind.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Arg: -1, Message: message}
}

// NewArg builds an Error that names the offending argument's position.
func NewArg(kind Kind, op string, arg int, message string) *Error {
	return &Error{Kind: kind, Op: op, Arg: arg, Message: message}
}

// Wrap attaches a lower-level cause (e.g. a failed mmap syscall) to a new
// kernel Error, preserving it for errors.Cause/errors.Unwrap.
func Wrap(cause error, kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Arg: -1, Message: message, cause: errors.Wrap(cause, message)}
}

// WithLocation attaches a source location, used by the evaluator's
// ParseError results.
func (e *Error) WithLocation(line, column int) *Error {
	e.Location = SourceLocation{Line: line, Column: column}
	return e
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
