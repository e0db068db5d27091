package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/assemblyhq/eventkit/pkg/grants"
	"github.com/assemblyhq/eventkit/pkg/roles"
)

// Grant gives targetID the role on the event, creating or fully replacing
// any existing grant for the pair. The actor must hold permission
// management rights on the event; the target must be a known identity; the
// role must be a member of the closed role set.
//
// Grant is an upsert keyed on (target, event): a user holds at most one
// role per event, so a second grant overwrites rather than adds. The write
// is visible to the very next resolution.
func (s *Service) Grant(ctx context.Context, actorID, eventID, targetID uuid.UUID, role roles.Role, scope roles.Scope) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if err := s.authorizeMutation(ctx, actorID, eventID, targetID); err != nil {
		return err
	}
	if role != roles.Owner {
		if err := s.guardLastOwner(ctx, eventID, targetID); err != nil {
			return err
		}
	}

	return s.store.Upsert(ctx, grants.Grant{
		UserID:  targetID,
		EventID: eventID,
		Role:    role,
		Scope:   scope,
	})
}

// ChangeRole moves an existing grant to a new role, keeping its scope where
// the new role can carry one. Returns ErrNotFound when the target holds no
// grant on the event.
func (s *Service) ChangeRole(ctx context.Context, actorID, eventID, targetID uuid.UUID, newRole roles.Role) error {
	if !newRole.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, newRole)
	}
	if err := s.authorizeMutation(ctx, actorID, eventID, targetID); err != nil {
		return err
	}

	existing, err := s.store.Find(ctx, targetID, eventID)
	if err != nil {
		if errors.Is(err, grants.ErrGrantNotFound) {
			return errors.Join(ErrNotFound, err)
		}
		return err
	}
	if existing.Role == newRole {
		return nil
	}
	if existing.Role == roles.Owner {
		if err := s.guardLastOwner(ctx, eventID, targetID); err != nil {
			return err
		}
	}

	return s.store.Upsert(ctx, grants.Grant{
		UserID:  targetID,
		EventID: eventID,
		Role:    newRole,
		Scope:   existing.Scope,
	})
}

// Revoke deletes the target's grant on the event. The next resolution for
// the pair returns no access, not viewer. Returns ErrNotFound when no grant
// exists.
func (s *Service) Revoke(ctx context.Context, actorID, eventID, targetID uuid.UUID) error {
	if err := s.authorizeMutation(ctx, actorID, eventID, targetID); err != nil {
		return err
	}
	if err := s.guardLastOwner(ctx, eventID, targetID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, targetID, eventID); err != nil {
		if errors.Is(err, grants.ErrGrantNotFound) {
			return errors.Join(ErrNotFound, err)
		}
		return err
	}
	return nil
}

// authorizeMutation enforces the shared mutation preconditions: the actor
// resolves to a permission-managing role on the event and the target is a
// known identity.
func (s *Service) authorizeMutation(ctx context.Context, actorID, eventID, targetID uuid.UUID) error {
	actor, err := s.Resolve(ctx, actorID, eventID)
	if err != nil {
		return err
	}
	if !actor.CanManagePermissions() {
		return ErrForbidden
	}

	if _, err := s.identities.Identity(ctx, targetID); err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			return errors.Join(ErrNotFound, err)
		}
		return err
	}
	return nil
}

// guardLastOwner refuses a mutation that would demote or remove the only
// remaining owner of an event. The check reads the grant table without a
// lock; concurrent mutations race last-write-wins at the store, so this is
// a guard against routine mistakes, not a transactional invariant.
func (s *Service) guardLastOwner(ctx context.Context, eventID, targetID uuid.UUID) error {
	existing, err := s.store.Find(ctx, targetID, eventID)
	if err != nil {
		if errors.Is(err, grants.ErrGrantNotFound) {
			return nil
		}
		return err
	}
	if existing.Role != roles.Owner {
		return nil
	}

	rows, err := s.store.ListByEvent(ctx, eventID)
	if err != nil {
		return err
	}
	owners := 0
	for _, row := range rows {
		if row.Role == roles.Owner {
			owners++
		}
	}
	if owners <= 1 {
		return ErrLastOwner
	}
	return nil
}
