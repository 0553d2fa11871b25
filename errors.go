package guarded

import (
	"errors"
	"fmt"
)

// ErrNotOwner is the sentinel wrapped by every AuthorizationError.
var ErrNotOwner = errors.New("guarded: caller is not owner")

// ErrEmptyOwner is returned by New when the owner identity is missing.
var ErrEmptyOwner = errors.New("guarded: owner identity is required")

// AuthorizationError reports a mutation attempted by a non-owner identity.
// The failed call leaves the value unchanged and emits no event.
type AuthorizationError struct {
	Caller Identity
	Owner  Identity
}

func (e *AuthorizationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("guarded: caller %q is not owner", string(e.Caller))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrNotOwner
}
