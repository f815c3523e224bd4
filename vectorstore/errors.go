package vectorstore

import (
	"errors"
	"fmt"
)

// Sentinel errors, usable with errors.Is regardless of which typed error
// wraps them.
var (
	// ErrUnauthorized is returned when the bound credential lacks the
	// permission required by the operation.
	ErrUnauthorized = errors.New("vectorstore: unauthorized")

	// ErrNotFound is returned when the target collection or point does
	// not exist.
	ErrNotFound = errors.New("vectorstore: not found")

	// ErrInvalidArgument is returned for malformed requests, e.g. a
	// vector whose length does not match the collection dimension.
	ErrInvalidArgument = errors.New("vectorstore: invalid argument")
)

// AuthorizationError reports that the credential attached to the client is
// not allowed to perform Operation against Collection. Authorization is
// enforced by the external service; this type only carries its verdict.
type AuthorizationError struct {
	Operation  string
	Collection string
	Err        error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("operation %q on collection %q not authorized: %v", e.Operation, e.Collection, e.Err)
}

func (e *AuthorizationError) Unwrap() error { return ErrUnauthorized }

// NotFoundError reports that the target of the operation is absent.
type NotFoundError struct {
	Collection string
	Err        error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("collection %q not found: %v", e.Collection, e.Err)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError reports a malformed request rejected by the service or
// by local argument checks.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid request: %s", e.Reason)
	}
	return fmt.Sprintf("invalid request: %s: %v", e.Reason, e.Err)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// IsUnauthorized checks whether err is an authorization failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound checks whether err reports an absent collection or point.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument checks whether err reports a malformed request.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
