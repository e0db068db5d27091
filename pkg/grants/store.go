package grants

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence contract for permission grants.
//
// Implementations must provide read-after-write consistency for a single
// (userID, eventID) key: a successful Upsert or Delete is visible to the
// next Find. Concurrent upserts to the same key resolve last-write-wins.
type Store interface {
	// Find retrieves the grant for a (user, event) pair.
	// Returns ErrGrantNotFound when no row exists; the caller must treat
	// that as "no access", which is distinct from a viewer grant.
	Find(ctx context.Context, userID, eventID uuid.UUID) (*Grant, error)

	// Upsert inserts or fully replaces the grant keyed on
	// (grant.UserID, grant.EventID). A second grant for the same pair is
	// an update, never an additional row.
	Upsert(ctx context.Context, grant Grant) error

	// Delete removes the grant for a (user, event) pair.
	// Returns ErrGrantNotFound when no row exists.
	Delete(ctx context.Context, userID, eventID uuid.UUID) error

	// ListByEvent returns all grants on an event, for administrative
	// "who has access" listings.
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]Grant, error)
}
