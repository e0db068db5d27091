package access

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/assemblyhq/eventkit/pkg/grants"
	"github.com/assemblyhq/eventkit/pkg/roles"
)

// Service resolves effective permissions and applies grant mutations. It
// owns no state of its own: every resolution is a pure function of the
// caller's identity plus at most one grant store read, so concurrent
// resolutions need no coordination.
type Service struct {
	identities IdentityProvider
	store      grants.Store
}

// NewService creates an access service over the given collaborators.
func NewService(identities IdentityProvider, store grants.Store) *Service {
	return &Service{
		identities: identities,
		store:      store,
	}
}

// Resolve computes the effective permission of a user on an event. The
// returned permission is nil when the user has no access at all; this is
// not an error. Identity lookup failures and store failures propagate
// unchanged — a failing store never resolves to "no access" or "full
// access".
func (s *Service) Resolve(ctx context.Context, userID, eventID uuid.UUID) (*Permission, error) {
	identity, err := s.identities.Identity(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ResolveIdentity(ctx, identity, eventID)
}

// ResolveIdentity is Resolve for callers that already hold the identity,
// such as the HTTP middleware; it skips the identity lookup.
func (s *Service) ResolveIdentity(ctx context.Context, identity Identity, eventID uuid.UUID) (*Permission, error) {
	if perm := ResolveOverride(identity); perm != nil {
		return perm, nil
	}

	grant, err := s.store.Find(ctx, identity.UserID, eventID)
	if err != nil {
		if errors.Is(err, grants.ErrGrantNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &Permission{
		Role:  grant.Role,
		Scope: grant.Scope,
	}, nil
}

// CheckEventAccess reports whether the user holds at least the given role
// on the event. A missing grant is false, not an error.
func (s *Service) CheckEventAccess(ctx context.Context, userID, eventID uuid.UUID, minimum roles.Role) (bool, error) {
	perm, err := s.Resolve(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	return perm.AtLeast(minimum), nil
}

// CanManageEvent reports whether the user may edit the event's settings.
func (s *Service) CanManageEvent(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	perm, err := s.Resolve(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	return perm.CanEditSettings(), nil
}

// CanDeleteEvent reports whether the user may delete the event.
func (s *Service) CanDeleteEvent(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	perm, err := s.Resolve(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	return perm.CanDeleteEvent(), nil
}

// CanManageAttendants reports whether the user may manage event content
// together with the scope that management is limited to. Callers must apply
// the scope as a data filter; the boolean alone is not unrestricted access.
func (s *Service) CanManageAttendants(ctx context.Context, userID, eventID uuid.UUID) (bool, roles.Scope, error) {
	perm, err := s.Resolve(ctx, userID, eventID)
	if err != nil {
		return false, roles.ScopeAll, err
	}
	scope, _ := perm.ContentScope()
	return perm.CanManageContent(), scope, nil
}

// ListGrants returns all grants on an event for an administrative "who has
// access" listing. The actor must hold permission management rights.
func (s *Service) ListGrants(ctx context.Context, actorID, eventID uuid.UUID) ([]grants.Grant, error) {
	actor, err := s.Resolve(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManagePermissions() {
		return nil, ErrForbidden
	}
	return s.store.ListByEvent(ctx, eventID)
}
