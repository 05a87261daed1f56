// Package apperr defines the error taxonomy shared by services and the HTTP
// boundary. Services return *Error; handlers map Kind to a status code.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindBusinessRule
)

type Error struct {
	Kind    Kind
	Message string              // safe to show to clients
	Fields  map[string][]string // field violations, validation errors only
	Err     error               // underlying cause, logged server-side only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func BusinessRule(msg string) *Error {
	return &Error{Kind: KindBusinessRule, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation Error", Fields: fields}
}

// KindOf classifies any error; non-apperr errors count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
