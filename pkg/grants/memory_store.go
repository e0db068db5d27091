package grants

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type pairKey struct {
	userID  uuid.UUID
	eventID uuid.UUID
}

// MemoryStore implements Store with an in-process map. It is safe for
// concurrent use and returns copies, so callers can never mutate stored rows.
type MemoryStore struct {
	mu     sync.RWMutex
	grants map[pairKey]Grant
}

// NewMemoryStore creates an empty in-memory grant store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		grants: make(map[pairKey]Grant),
	}
}

// Find retrieves the grant for a (user, event) pair.
func (m *MemoryStore) Find(ctx context.Context, userID, eventID uuid.UUID) (*Grant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	grant, exists := m.grants[pairKey{userID, eventID}]
	if !exists {
		return nil, ErrGrantNotFound
	}

	grantCopy := grant
	return &grantCopy, nil
}

// Upsert inserts or replaces the grant for (grant.UserID, grant.EventID).
func (m *MemoryStore) Upsert(ctx context.Context, grant Grant) error {
	if err := grant.Validate(); err != nil {
		return err
	}

	grant = grant.normalized()
	grant.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.grants[pairKey{grant.UserID, grant.EventID}] = grant
	return nil
}

// Delete removes the grant for a (user, event) pair.
func (m *MemoryStore) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pairKey{userID, eventID}
	if _, exists := m.grants[key]; !exists {
		return ErrGrantNotFound
	}

	delete(m.grants, key)
	return nil
}

// ListByEvent returns all grants on an event.
func (m *MemoryStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]Grant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Grant
	for key, grant := range m.grants {
		if key.eventID == eventID {
			result = append(result, grant)
		}
	}
	return result, nil
}
