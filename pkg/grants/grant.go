package grants

import (
	"time"

	"github.com/google/uuid"

	"github.com/assemblyhq/eventkit/pkg/roles"
)

// Grant is a persisted permission row: one user, one event, one role.
// Scope optionally narrows overseer/keyman grants to a sub-part of the
// event; it is always empty for other roles.
type Grant struct {
	UserID    uuid.UUID   `json:"user_id"`
	EventID   uuid.UUID   `json:"event_id"`
	Role      roles.Role  `json:"role"`
	Scope     roles.Scope `json:"scope,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Validate checks the grant is storable: real identifiers and a role from
// the closed set. Scope is normalized, not rejected — a scope on a role
// that cannot carry one is discarded.
func (g *Grant) Validate() error {
	if g.UserID == uuid.Nil || g.EventID == uuid.Nil {
		return ErrInvalidGrant
	}
	if !g.Role.Valid() {
		return ErrInvalidGrant
	}
	return nil
}

// normalized returns a copy with the scope rules applied.
func (g Grant) normalized() Grant {
	g.Scope = roles.NormalizeScope(g.Role, g.Scope)
	return g
}
