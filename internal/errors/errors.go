package errors

import (
	"errors"
	"fmt"
)

// Common error types for the SSO relay
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSealedPayload   = errors.New("sealed payload could not be opened")

	// Authorization flow errors
	ErrInvalidState = errors.New("invalid state")
	ErrStateExpired = errors.New("state expired")
	ErrFlowNotFound = errors.New("authorization flow not found")

	// Provider errors
	ErrProviderResponse    = errors.New("provider returned an error response")
	ErrMissingAccessToken  = errors.New("provider response has no access_token")
	ErrInvalidIDToken      = errors.New("invalid id token")
	ErrNoRefreshToken      = errors.New("no refresh token in session")
	ErrProviderUnreachable = errors.New("provider unreachable")
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

// New returns an error that formats as the given text
func New(text string) error {
	return errors.New(text)
}
