package errs

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDatabaseUnavailable = errors.New("database is not configured")
	ErrPoolTimeout         = errors.New("connection pool acquire timed out")
	ErrPoolClosed          = errors.New("connection pool is closed")
)

// InvalidTransitionError carries both sides of a rejected lifecycle transition.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// ValidationError reports bad input. It is produced before any storage call is
// made, so a failing request never reaches the pool.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field %q %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UnregisteredCapabilityError reports a resolve of a capability that has no
// binding in the dependency container.
type UnregisteredCapabilityError struct {
	Capability string
}

func (e *UnregisteredCapabilityError) Error() string {
	return fmt.Sprintf("capability %s is not registered", e.Capability)
}
