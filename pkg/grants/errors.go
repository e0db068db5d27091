package grants

import "errors"

// Domain errors for grant persistence.
var (
	// ErrGrantNotFound is returned when no grant exists for a (user, event) pair.
	ErrGrantNotFound = errors.New("grants.not_found")

	// ErrInvalidGrant is returned when a grant fails validation before a write.
	ErrInvalidGrant = errors.New("grants.invalid_grant")

	// ErrStoreUnavailable wraps backend failures. It is never collapsed into
	// "no access" or "full access" by callers; the request fails instead.
	ErrStoreUnavailable = errors.New("grants.store_unavailable")
)
