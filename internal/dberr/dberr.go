// Package dberr defines the error taxonomy shared by the parser, schema
// registry and record engine. Every error produced inside a command
// carries a Kind so the command boundary can classify it without string
// matching.
package dberr

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of a command-level error.
type Kind int

const (
	// KindParse marks a malformed command line, value list or assignment.
	KindParse Kind = iota
	// KindSchema marks a bad column spec or an unsupported column type.
	KindSchema
	// KindConflict marks a table that already exists.
	KindConflict
	// KindNotFound marks a missing table or column.
	KindNotFound
	// KindType marks a value that fails coercion, or an arity mismatch.
	KindType
	// KindValidation marks structurally invalid state.
	KindValidation
	// KindInternal marks an unanticipated failure recovered at the
	// command boundary.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindSchema:
		return "schema error"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not found"
	case KindType:
		return "type error"
	case KindValidation:
		return "validation error"
	default:
		return "internal error"
	}
}

// Error is a classified command error.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Parse builds a KindParse error.
func Parse(format string, args ...any) *Error {
	return New(KindParse, format, args...)
}

// Schema builds a KindSchema error.
func Schema(format string, args ...any) *Error {
	return New(KindSchema, format, args...)
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return New(KindConflict, format, args...)
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// Type builds a KindType error.
func Type(format string, args ...any) *Error {
	return New(KindType, format, args...)
}

// Validation builds a KindValidation error.
func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

// Internal builds a KindInternal error.
func Internal(format string, args ...any) *Error {
	return New(KindInternal, format, args...)
}

// Msg returns the bare message of a classified error, or err.Error() for
// anything else. Useful when re-wrapping with extra context.
func Msg(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}

// KindOf extracts the Kind from err, or KindInternal if err was not
// produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
