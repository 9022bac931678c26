package errors

import (
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime    Category = "runtime"
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryIO         Category = "io"
)

// Location represents a position in a source document.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// SourceLine is one numbered line of a document.
type SourceLine struct {
	Number int
	Text   string
}

// MarkupError is a structured error with a code, optional source location and hints.
type MarkupError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, validation, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Location is the document location where the error occurred.
	Location *Location

	// Excerpt holds the document lines around Location.
	Excerpt []SourceLine

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *MarkupError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a MarkupError with the same non-empty code.
func (e *MarkupError) Is(target error) bool {
	t, ok := target.(*MarkupError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithLocation adds a document location to the error.
func (e *MarkupError) WithLocation(file string, line, column int) *MarkupError {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// WithSource attaches the lines of src around the error's location.
// It does nothing before a location is set.
func (e *MarkupError) WithSource(src []byte) *MarkupError {
	if e.Location != nil {
		e.Excerpt = excerpt(src, e.Location.Line, excerptRadius)
	}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MarkupError) WithSuggestion(s string) *MarkupError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *MarkupError) WithDetail(d string) *MarkupError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail to the error.
func (e *MarkupError) WithDetailf(format string, args ...any) *MarkupError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *MarkupError) Wrap(err error) *MarkupError {
	e.Wrapped = err
	return e
}

// excerptRadius is the number of lines shown on each side of an error line.
const excerptRadius = 2

// excerpt returns the numbered lines of src within radius of line.
func excerpt(src []byte, line, radius int) []SourceLine {
	if line < 1 || len(src) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(string(src), "\n"), "\n")
	if line > len(lines) {
		return nil
	}

	first := max(line-radius, 1)
	last := min(line+radius, len(lines))
	out := make([]SourceLine, 0, last-first+1)
	for n := first; n <= last; n++ {
		out = append(out, SourceLine{Number: n, Text: strings.TrimSuffix(lines[n-1], "\r")})
	}
	return out
}

// New creates a MarkupError from a registered error code.
func New(code string) *MarkupError {
	template, ok := registry[code]
	if !ok {
		return &MarkupError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MarkupError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Sentinel returns a code-only error for use with errors.Is.
// Its Detail is left empty so the sentinel's text is stable.
func Sentinel(code string) *MarkupError {
	err := New(code)
	err.Detail = ""
	return err
}

// Newf creates a new MarkupError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MarkupError {
	return &MarkupError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError returns err as a MarkupError. A MarkupError is returned as a
// copy, so decorating the result never changes a shared sentinel. Any other
// error is wrapped under code.
func FromError(err error, code string) *MarkupError {
	if err == nil {
		return nil
	}
	if me, ok := err.(*MarkupError); ok {
		cp := *me
		return &cp
	}
	return New(code).Wrap(err)
}
