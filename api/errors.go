// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring library.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
//
// Cancellation has no sentinel here: cancellation-aware operations take a
// context.Context and return ctx.Err() untouched, so callers match it with
// errors.Is(err, context.Canceled) or context.DeadlineExceeded.
var (
	ErrEmpty           = errors.New("buffer is empty")
	ErrFull            = errors.New("buffer is full")
	ErrTimeout         = errors.New("operation timeout")
	ErrInvalidCapacity = errors.New("invalid buffer capacity")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeEmpty
	ErrCodeFull
	ErrCodeTimeout
	ErrCodeInternal
)

// Error represents a structured error with code and context.
// It wraps a sentinel error, so errors.Is sees through it.
type Error struct {
	Code    ErrorCode
	Err     error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (context: %+v)", e.Err, e.Context)
}

// Unwrap exposes the wrapped sentinel to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error around a sentinel.
func NewError(code ErrorCode, err error) *Error {
	return &Error{
		Code:    code,
		Err:     err,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
