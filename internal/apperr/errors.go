// Package apperr defines the error taxonomy shared by every moai-starter
// package. Each error carries a Kind, a stable machine-readable Code and
// positional Args for message interpolation, so callers branch on codes
// instead of matching message text.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for exit-code mapping and reporting.
type Kind int

const (
	// KindUnexpected is anything that was not categorized at its origin.
	KindUnexpected Kind = iota
	// KindDomain is raised by a field policy or value-object constructor.
	KindDomain
	// KindApplication is raised by a use-case level lookup.
	KindApplication
	// KindAdapter is raised by template, catalog or profile wiring.
	KindAdapter
	// KindIO is raised by the writer and archiver.
	KindIO
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindApplication:
		return "application"
	case KindAdapter:
		return "adapter"
	case KindIO:
		return "io"
	default:
		return "unexpected"
	}
}

// Code is a stable, machine-readable error identifier such as
// "package-name.reserved-prefix".
type Code string

// Error is the single coded error type of the module.
type Error struct {
	Kind  Kind
	Code  Code
	Args  []any
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(string(e.Code))
	if len(e.Args) > 0 {
		fmt.Fprintf(&b, " %v", e.Args)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same kind and code.
// This lets tests and callers write errors.Is(err, apperr.Violation(...)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Code == e.Code
}

// Violation builds a domain error with the composed code "<field>.<violation>".
func Violation(field, violation string, args ...any) *Error {
	return &Error{
		Kind: KindDomain,
		Code: Code(field + "." + violation),
		Args: args,
	}
}

// Application builds an application-level error.
func Application(code Code, args ...any) *Error {
	return &Error{Kind: KindApplication, Code: code, Args: args}
}

// Adapter builds an adapter/infrastructure error wrapping cause.
func Adapter(code Code, cause error, args ...any) *Error {
	return &Error{Kind: KindAdapter, Code: code, Args: args, Cause: cause}
}

// IO builds a filesystem error wrapping cause.
func IO(code Code, cause error, args ...any) *Error {
	return &Error{Kind: KindIO, Code: code, Args: args, Cause: cause}
}

// Unexpected wraps an uncategorized failure.
func Unexpected(cause error) *Error {
	return &Error{Kind: KindUnexpected, Code: CodeUnexpected, Cause: cause}
}

// CodeUnexpected is the code carried by Unexpected errors.
const CodeUnexpected Code = "unexpected"

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, KindUnexpected for untyped errors.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnexpected
}

// CodeOf returns the code of err, or "" when err carries none.
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ""
}
