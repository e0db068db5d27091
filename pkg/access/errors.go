package access

import "errors"

// Domain errors for access resolution and grant mutations.
var (
	// ErrUnauthenticated is returned when no caller identity is available.
	ErrUnauthenticated = errors.New("access.unauthenticated")

	// ErrForbidden is returned when the caller's effective role lacks the
	// required capability. It is never downgraded to a partial result.
	ErrForbidden = errors.New("access.forbidden")

	// ErrNotFound is returned when a referenced user or grant does not exist.
	ErrNotFound = errors.New("access.not_found")

	// ErrInvalidRole is returned when a mutation names a role outside the
	// closed role set.
	ErrInvalidRole = errors.New("access.invalid_role")

	// ErrIdentityNotFound is returned by identity providers for unknown users.
	ErrIdentityNotFound = errors.New("access.identity_not_found")

	// ErrLastOwner is returned when a mutation would leave an event with no
	// owner at all. The global admin override remains the recovery path, but
	// routine mutations refuse to orphan an event.
	ErrLastOwner = errors.New("access.last_owner")
)
