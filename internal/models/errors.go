package models

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Sentinel errors for the three rejection kinds.
// The typed errors below match them through errors.Is.
var (
	// ErrValidation indicates an empty required field or an unknown list
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the referenced card is not on the board
	ErrNotFound = errors.New("card not found")

	// ErrWipLimitExceeded indicates the destination list is at capacity
	ErrWipLimitExceeded = errors.New("wip limit exceeded")
)

// ValidationError reports which input was rejected and why
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError builds a ValidationError
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a card id missing from the board
type NotFoundError struct {
	CardID types.CardID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("card %q not found", e.CardID)
}

// Is makes errors.Is(err, ErrNotFound) hold
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// WipLimitExceededError reports a relocation blocked by destination capacity
type WipLimitExceededError struct {
	ListID types.ListID
	Limit  int
	Count  int
}

func (e *WipLimitExceededError) Error() string {
	return fmt.Sprintf("list %q is at its wip limit (%d/%d)", e.ListID, e.Count, e.Limit)
}

// Is makes errors.Is(err, ErrWipLimitExceeded) hold
func (e *WipLimitExceededError) Is(target error) bool {
	return target == ErrWipLimitExceeded
}
