package errors

import (
	"errors"
	"fmt"
)

// Common error types for the job board client
var (
	// Session errors
	ErrUnauthenticated     = errors.New("not logged in")
	ErrForbiddenRole       = errors.New("account type not permitted")
	ErrMissingSessionField = errors.New("missing required session field")

	// Transport errors
	ErrNetwork = errors.New("network failure")

	// Input errors
	ErrValidation = errors.New("validation failed")

	// View errors
	ErrStaleResponse = errors.New("response superseded by a newer request")

	// Mock backend errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")

	// General errors
	ErrNotFound = errors.New("not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
