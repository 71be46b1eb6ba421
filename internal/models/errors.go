package models

import (
	"errors"
	"fmt"
)

// Error kinds. Check with errors.Is; the concrete errors below wrap one of them.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrPolicyViolation = errors.New("policy violation")
	ErrNotFound        = errors.New("not found")
	ErrWriteFailure    = errors.New("write failure")
)

var (
	// ErrUsernameTaken is returned when an employee username is already stored.
	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrConflict)

	// ErrPhoneTaken is returned when a patient phone number is already stored.
	ErrPhoneTaken = fmt.Errorf("%w: phone already exists", ErrConflict)

	// ErrPasswordTooShort means the configured default password is below the minimum length.
	ErrPasswordTooShort = fmt.Errorf("%w: password too short", ErrPolicyViolation)

	// ErrInvalidUserType is returned for a userType outside the enumerated ones.
	ErrInvalidUserType = fmt.Errorf("%w: unknown userType", ErrInvalidInput)

	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
	ErrNoUsers      = fmt.Errorf("%w: no users match", ErrNotFound)

	ErrCreateFailed = fmt.Errorf("%w: could not create user", ErrWriteFailure)
	ErrUpdateFailed = fmt.Errorf("%w: could not update user", ErrWriteFailure)
	ErrDeleteFailed = fmt.Errorf("%w: could not delete user", ErrWriteFailure)
)
