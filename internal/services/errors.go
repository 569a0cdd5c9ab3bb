package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
)

// PermissionError carries the acting user and the denied action.
type PermissionError struct {
	UserID string
	Action string
	Reason string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s cannot %s: %s", e.UserID, e.Action, e.Reason)
}

func (e *PermissionError) Unwrap() error {
	return ErrForbidden
}

func NewPermissionError(userID, action, reason string) *PermissionError {
	return &PermissionError{UserID: userID, Action: action, Reason: reason}
}
