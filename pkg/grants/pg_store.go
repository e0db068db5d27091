package grants

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/assemblyhq/eventkit/pkg/pg"
	"github.com/assemblyhq/eventkit/pkg/roles"
)

// PGStore implements Store on PostgreSQL. The one-row-per-(user,event)
// invariant is enforced by the primary key plus an ON CONFLICT upsert, so
// concurrent writers resolve last-write-wins at the database.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a grant store backed by the given connection pool.
// The event_grants table must exist; see the migrations directory.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const findGrantSQL = `
SELECT user_id, event_id, role, scope, updated_at
FROM event_grants
WHERE user_id = $1 AND event_id = $2`

// Find retrieves the grant for a (user, event) pair.
func (s *PGStore) Find(ctx context.Context, userID, eventID uuid.UUID) (*Grant, error) {
	var (
		grant Grant
		role  string
		scope string
	)
	err := s.pool.QueryRow(ctx, findGrantSQL, userID, eventID).
		Scan(&grant.UserID, &grant.EventID, &role, &scope, &grant.UpdatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrGrantNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	grant.Role = roles.Role(role)
	grant.Scope = roles.Scope(scope)
	return &grant, nil
}

const upsertGrantSQL = `
INSERT INTO event_grants (user_id, event_id, role, scope, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (user_id, event_id)
DO UPDATE SET role = EXCLUDED.role, scope = EXCLUDED.scope, updated_at = now()`

// Upsert inserts or replaces the grant for (grant.UserID, grant.EventID).
func (s *PGStore) Upsert(ctx context.Context, grant Grant) error {
	if err := grant.Validate(); err != nil {
		return err
	}
	grant = grant.normalized()

	_, err := s.pool.Exec(ctx, upsertGrantSQL,
		grant.UserID, grant.EventID, grant.Role.String(), grant.Scope.String())
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

const deleteGrantSQL = `
DELETE FROM event_grants
WHERE user_id = $1 AND event_id = $2`

// Delete removes the grant for a (user, event) pair.
func (s *PGStore) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, deleteGrantSQL, userID, eventID)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGrantNotFound
	}
	return nil
}

const listGrantsSQL = `
SELECT user_id, event_id, role, scope, updated_at
FROM event_grants
WHERE event_id = $1
ORDER BY updated_at`

// ListByEvent returns all grants on an event.
func (s *PGStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]Grant, error) {
	rows, err := s.pool.Query(ctx, listGrantsSQL, eventID)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []Grant
	for rows.Next() {
		var (
			grant Grant
			role  string
			scope string
		)
		if err := rows.Scan(&grant.UserID, &grant.EventID, &role, &scope, &grant.UpdatedAt); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		grant.Role = roles.Role(role)
		grant.Scope = roles.Scope(scope)
		result = append(result, grant)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return result, nil
}
