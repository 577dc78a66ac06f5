// Package apperror defines the typed errors shared by the models, store and report packages.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
)

// ParseError represents an input value that could not be parsed
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a transaction or settings record that breaks an invariant.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError wraps a failure of the persistence layer for a given key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for key '%s': %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when a report or output format is not known.
type UnsupportedFormatError struct {
	Format    string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported format: %s", e.Format)
	}
	return fmt.Sprintf("unsupported format: %s (supported: %s)", e.Format, strings.Join(e.Supported, ", "))
}
