/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no item matches the requested key
	ErrNotFound = errors.New("item not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStore is matched by every failure reported by the remote store
	ErrStore = errors.New("store request failed")

	// ErrClosed is returned when a request is issued on a closed client
	ErrClosed = errors.New("client is closed")
)

// NotFoundError represents a lookup that succeeded but matched no item
type NotFoundError struct {
	Table string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no item in table %q with key %q", e.Table, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StoreError wraps a failure surfaced by the remote store. Message holds the
// store's own message, unmodified.
type StoreError struct {
	Operation string
	Table     string
	Code      string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s on table %q failed: %s: %s", e.Operation, e.Table, e.Code, e.Message)
	}
	return fmt.Sprintf("%s on table %q failed: %s", e.Operation, e.Table, e.Message)
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(table, key string) error {
	return &NotFoundError{Table: table, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStoreError creates a StoreError from err. When err carries a smithy API
// error, its code and message are used; otherwise the message is err's text.
func NewStoreError(operation, table string, err error) error {
	se := &StoreError{
		Operation: operation,
		Table:     table,
		Message:   err.Error(),
		Err:       err,
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		se.Code = ae.ErrorCode()
		if msg := ae.ErrorMessage(); msg != "" {
			se.Message = msg
		}
	}
	return se
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStoreError checks if an error was reported by the remote store
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}
