package tmpl

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Predefined errors (sentinel values).
var (
	ErrExprSyntax     = NewError("expression syntax error")
	ErrNameNotFound   = NewError("name not found")
	ErrBadArgument    = NewError("bad argument")
	ErrRenderTemplate = NewError("template render failed")
	ErrReadInput      = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Derived copies produced by [Error.Wrap] and [Error.With] keep the message
// of the sentinel they came from, and [Error.Is] matches on that message, so
// errors.Is(err, ErrExprSyntax) holds anywhere along a wrap chain.
type Error struct {
	msg   string
	err   error       // Wrapped cause (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()

	case e.msg != "":
		return e.msg

	case e.err != nil:
		return e.err.Error()

	default:
		return ""
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error carrying the same message.
// Sentinels survive Wrap and With because both return derived copies
// rather than mutating the sentinel itself.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	combined := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	combined = append(combined, e.attrs...)
	combined = append(combined, attrs...)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: combined,
	}
}

// suggestName returns the closest registered name to the unresolved one,
// or "" when nothing ranks. Used to attach a "did you mean" attribute to
// name-resolution errors.
func suggestName(name string, candidates []string) string {
	if name == "" {
		return ""
	}

	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// unknownIdent extracts the offending identifier from an expr checker
// message of the form "unknown name foo (1:1)".
func unknownIdent(msg string) string {
	for _, marker := range []string{"unknown name ", "unknown function "} {
		_, rest, ok := strings.Cut(msg, marker)
		if !ok {
			continue
		}

		ident, _, _ := strings.Cut(rest, " ")

		return strings.Trim(ident, "()\"'")
	}

	return ""
}
