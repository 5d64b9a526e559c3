// Package apperror carries HTTP-renderable errors across layer
// boundaries without the usecases importing gin. Most flows use the
// domain sentinels directly; AppError is for the cases that need a
// specific code and status attached at the source.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError pairs a machine-readable code with the status it should
// surface as. Err, when set, is the underlying cause and is never
// rendered to clients.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: statusCode}
}

// Wrap attaches a cause while keeping the rendered code and message.
func Wrap(err error, code, message string, statusCode int) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: statusCode, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode resolves the HTTP status for an arbitrary error chain,
// falling back to 500 when no AppError is present.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
