package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors
	ErrColumnNotFound = errors.New("column not found")
	ErrInvalidKind    = errors.New("invalid analysis kind")

	// Data-sufficiency errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrEmptyTable       = fmt.Errorf("%w: table has zero rows", ErrInsufficientData)
	ErrMetadataNotBuilt = errors.New("column metadata has not been built")

	// Table construction errors
	ErrColumnLengthMismatch = errors.New("column lengths do not match")
	ErrDuplicateColumn      = errors.New("duplicate column name")
)

// Error constructors with context
func NewColumnNotFoundError(operation, column string) error {
	return fmt.Errorf("%w: %s (operation %s)", ErrColumnNotFound, column, operation)
}

func NewInvalidKindError(operation, kind string) error {
	return fmt.Errorf("%w: %q (operation %s)", ErrInvalidKind, kind, operation)
}

func NewInsufficientDataError(operation, reason string) error {
	return fmt.Errorf("%w: %s (operation %s)", ErrInsufficientData, reason, operation)
}

// Error checking helpers
func IsConfigError(err error) bool {
	return errors.Is(err, ErrColumnNotFound) || errors.Is(err, ErrInvalidKind)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
