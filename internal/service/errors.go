package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrUserBlocked        = errors.New("user is blocked")
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneTaken         = errors.New("phone is already registered")
	ErrStorageDisabled    = errors.New("avatar storage is not configured")
)

// FieldError reports a missing or unusable request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func required(field string) error {
	return &FieldError{Field: field}
}
