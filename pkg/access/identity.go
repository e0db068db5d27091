package access

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// GlobalRole is a system-wide role attached to a user account, independent
// of any event. Only GlobalAdmin carries special meaning here.
type GlobalRole string

const (
	// GlobalAdmin bypasses the grant table: admins resolve to full owner on
	// every event.
	GlobalAdmin GlobalRole = "admin"

	// GlobalMember is a regular account with no implicit event access.
	GlobalMember GlobalRole = "member"
)

// Identity is the authenticated caller as reported by the identity
// collaborator.
type Identity struct {
	UserID     uuid.UUID  `json:"user_id"`
	GlobalRole GlobalRole `json:"global_role"`
}

// IdentityProvider looks up user identities. Implemented by the
// authentication layer; the access package only consumes it.
type IdentityProvider interface {
	// Identity returns the identity for a user ID.
	// Returns ErrIdentityNotFound for unknown users.
	Identity(ctx context.Context, userID uuid.UUID) (Identity, error)
}

// StaticIdentities is an in-memory IdentityProvider for tests and tooling.
// It is safe for concurrent use.
type StaticIdentities struct {
	mu  sync.RWMutex
	ids map[uuid.UUID]Identity
}

// NewStaticIdentities creates a provider preloaded with the given identities.
func NewStaticIdentities(identities ...Identity) *StaticIdentities {
	ids := make(map[uuid.UUID]Identity, len(identities))
	for _, id := range identities {
		ids[id.UserID] = id
	}
	return &StaticIdentities{ids: ids}
}

// Add registers or replaces an identity.
func (s *StaticIdentities) Add(identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[identity.UserID] = identity
}

// Identity returns the identity for a user ID.
func (s *StaticIdentities) Identity(ctx context.Context, userID uuid.UUID) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.ids[userID]
	if !ok {
		return Identity{}, ErrIdentityNotFound
	}
	return identity, nil
}
