package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskStatusRequired = errors.New("task status is required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// ConflictError signals a state transition that violates a business
// invariant. It carries a human-readable reason and is never retried.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// ErrUserCanNotBeDeleted is raised when the deletion-eligibility check fails.
var ErrUserCanNotBeDeleted = &ConflictError{Reason: "User can not be deleted"}
