package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	msg := err.Err.Error()
	for _, fld := range err.Fields {
		msg += "; " + fld.Field + ": " + fld.Error
	}
	return msg
}

// ShutdownError reports a broken state the API cannot serve from. The server shuts down once it is reported.
type ShutdownError struct {
	Reason string
}

func NewShutdownError(reason string) error {
	return errors.WithStack(&ShutdownError{Reason: reason})
}

func (err *ShutdownError) Error() string {
	return "shutting down: " + err.Reason
}

func IsShutdown(err error) bool {
	var sErr *ShutdownError
	return errors.As(err, &sErr)
}
