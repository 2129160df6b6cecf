package models

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound is returned by lookups for an unknown phone or id
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicatePhone is returned when the phone uniqueness constraint rejects a create
	ErrDuplicatePhone = errors.New("an account with this phone already exists")

	// ErrStaleAccount means the account changed since it was read
	ErrStaleAccount = errors.New("account was modified concurrently")

	// ErrInvalidCredentials covers both unknown phone and wrong password
	ErrInvalidCredentials = errors.New("invalid phone or password")

	// ErrInvalidRole is returned when a role is not held by the account
	ErrInvalidRole = errors.New("role is not held by this account")

	// ErrSessionConflict is returned when the account is already active under a different role
	ErrSessionConflict = errors.New("account is already active under a different role")

	// ErrInvalidToken covers malformed, tampered and expired tokens
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrFoodNotFound is returned for unknown or deactivated foods
	ErrFoodNotFound = errors.New("food not found")

	// ErrDuplicateFood is returned when the (name, category) pair is already taken
	ErrDuplicateFood = errors.New("food with this name and category already exists")
)

// ValidationError reports client-fixable input problems
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
