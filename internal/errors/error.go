package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryDocument Category = "document"
	CategoryRender   Category = "render"
	CategoryServer   Category = "server"
)

// AdminError is a structured error with a code, an explanation, and an
// optional cause.
type AdminError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AdminError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AdminError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an AdminError with the same code.
func (e *AdminError) Is(target error) bool {
	t, ok := target.(*AdminError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *AdminError) WithDetail(d string) *AdminError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AdminError) WithSuggestion(s string) *AdminError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *AdminError) Wrap(err error) *AdminError {
	e.Wrapped = err
	return e
}

// New creates an AdminError from a registered error code.
func New(code string) *AdminError {
	template, ok := registry[code]
	if !ok {
		return &AdminError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AdminError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new AdminError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *AdminError {
	return &AdminError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an AdminError. Errors that already
// are (or wrap) an AdminError are returned as that AdminError.
func FromError(err error, code string) *AdminError {
	if err == nil {
		return nil
	}
	var ae *AdminError
	if stderrors.As(err, &ae) {
		return ae
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first AdminError in err's chain, or "".
func Code(err error) string {
	var ae *AdminError
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
