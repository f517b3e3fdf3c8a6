// Package apierror provides the error taxonomy and the standardized response
// structures for the API. All errors returned to clients go through this
// package to ensure consistency and to prevent leaking internal details
// (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationFields wraps multiple field errors from DTO validation.
type ValidationFields struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidationFields(fields map[string]string) *ValidationFields {
	return &ValidationFields{Detail: "Error de validacion", Fields: fields}
}

// ── Error taxonomy ───────────────────────────────────────────────────────────
// Services wrap these sentinels so handlers can map them to HTTP status codes
// without string matching: ErrNotFound → 404, ErrValidation and ErrConflict → 400.

var (
	ErrNotFound   = errors.New("no encontrado")
	ErrValidation = errors.New("validacion")
	ErrConflict   = errors.New("conflicto")
)

// NotFound builds an error classified as ErrNotFound with a client-facing message.
func NotFound(format string, args ...interface{}) error {
	return &taggedError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Validation builds an error classified as ErrValidation.
func Validation(format string, args ...interface{}) error {
	return &taggedError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// Conflict builds an error classified as ErrConflict.
func Conflict(format string, args ...interface{}) error {
	return &taggedError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }
func (e *taggedError) Unwrap() error { return e.kind }
