package app

import (
	"errors"
	"fmt"
)

// Expected auth failures. Credential problems collapse into a single
// generic error so the response never reveals whether the email exists.
var (
	ErrInvalidCredential  = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError carries the client-facing message for the violated
// rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError names which unique field collided at registration.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("user with this %s already exists", e.Field)
}
