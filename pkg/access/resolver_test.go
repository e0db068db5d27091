package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assemblyhq/eventkit/pkg/access"
	"github.com/assemblyhq/eventkit/pkg/grants"
	"github.com/assemblyhq/eventkit/pkg/roles"
)

// failingStore simulates a grant store backend outage.
type failingStore struct{}

func (failingStore) Find(ctx context.Context, userID, eventID uuid.UUID) (*grants.Grant, error) {
	return nil, errors.Join(grants.ErrStoreUnavailable, errors.New("connection refused"))
}

func (failingStore) Upsert(ctx context.Context, grant grants.Grant) error {
	return errors.Join(grants.ErrStoreUnavailable, errors.New("connection refused"))
}

func (failingStore) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	return errors.Join(grants.ErrStoreUnavailable, errors.New("connection refused"))
}

func (failingStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]grants.Grant, error) {
	return nil, errors.Join(grants.ErrStoreUnavailable, errors.New("connection refused"))
}

// testEnv bundles the service with its collaborators for direct seeding.
type testEnv struct {
	svc        *access.Service
	identities *access.StaticIdentities
	store      *grants.MemoryStore
}

func newTestEnv() testEnv {
	identities := access.NewStaticIdentities()
	store := grants.NewMemoryStore()
	return testEnv{
		svc:        access.NewService(identities, store),
		identities: identities,
		store:      store,
	}
}

func (e testEnv) addUser(role access.GlobalRole) uuid.UUID {
	id := uuid.New()
	e.identities.Add(access.Identity{UserID: id, GlobalRole: role})
	return id
}

func (e testEnv) grant(t *testing.T, userID, eventID uuid.UUID, role roles.Role, scope roles.Scope) {
	t.Helper()
	require.NoError(t, e.store.Upsert(context.Background(), grants.Grant{
		UserID: userID, EventID: eventID, Role: role, Scope: scope,
	}))
}

func TestService_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("admin bypasses grant table even with zero rows", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		admin := env.addUser(access.GlobalAdmin)
		eventID := uuid.New()

		perm, err := env.svc.Resolve(ctx, admin, eventID)
		require.NoError(t, err)
		require.NotNil(t, perm)
		assert.Equal(t, roles.Owner, perm.Role)
		assert.True(t, perm.GlobalOverride)
	})

	t.Run("admin override survives a dead store", func(t *testing.T) {
		t.Parallel()

		identities := access.NewStaticIdentities()
		svc := access.NewService(identities, failingStore{})
		admin := uuid.New()
		identities.Add(access.Identity{UserID: admin, GlobalRole: access.GlobalAdmin})

		// The store must not even be queried on the override path.
		perm, err := svc.Resolve(ctx, admin, uuid.New())
		require.NoError(t, err)
		require.NotNil(t, perm)
		assert.True(t, perm.GlobalOverride)
	})

	t.Run("no grant resolves to nil, not viewer", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		member := env.addUser(access.GlobalMember)

		perm, err := env.svc.Resolve(ctx, member, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, perm)
		assert.False(t, perm.CanView())
	})

	t.Run("grant resolves to its role and scope", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		member := env.addUser(access.GlobalMember)
		eventID := uuid.New()
		env.grant(t, member, eventID, roles.Overseer, "audio")

		perm, err := env.svc.Resolve(ctx, member, eventID)
		require.NoError(t, err)
		require.NotNil(t, perm)
		assert.Equal(t, roles.Overseer, perm.Role)
		assert.Equal(t, roles.Scope("audio"), perm.Scope)
		assert.False(t, perm.GlobalOverride)
	})

	t.Run("resolution is idempotent without intervening mutation", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		member := env.addUser(access.GlobalMember)
		eventID := uuid.New()
		env.grant(t, member, eventID, roles.Manager, roles.ScopeAll)

		first, err := env.svc.Resolve(ctx, member, eventID)
		require.NoError(t, err)
		second, err := env.svc.Resolve(ctx, member, eventID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown user propagates identity error", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		_, err := env.svc.Resolve(ctx, uuid.New(), uuid.New())
		assert.True(t, errors.Is(err, access.ErrIdentityNotFound))
	})

	t.Run("store failure propagates, never becomes no access", func(t *testing.T) {
		t.Parallel()

		identities := access.NewStaticIdentities()
		svc := access.NewService(identities, failingStore{})
		member := uuid.New()
		identities.Add(access.Identity{UserID: member, GlobalRole: access.GlobalMember})

		perm, err := svc.Resolve(ctx, member, uuid.New())
		require.Error(t, err)
		assert.True(t, errors.Is(err, grants.ErrStoreUnavailable))
		assert.Nil(t, perm)
	})

	t.Run("multiple owners resolve independently", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		u1 := env.addUser(access.GlobalMember)
		u2 := env.addUser(access.GlobalMember)
		eventID := uuid.New()
		env.grant(t, u1, eventID, roles.Owner, roles.ScopeAll)
		env.grant(t, u2, eventID, roles.Owner, roles.ScopeAll)

		for _, u := range []uuid.UUID{u1, u2} {
			perm, err := env.svc.Resolve(ctx, u, eventID)
			require.NoError(t, err)
			require.NotNil(t, perm)
			assert.Equal(t, roles.Owner, perm.Role)
		}

		// Removing one owner does not affect the other.
		require.NoError(t, env.store.Delete(ctx, u1, eventID))
		perm, err := env.svc.Resolve(ctx, u2, eventID)
		require.NoError(t, err)
		require.NotNil(t, perm)
		assert.Equal(t, roles.Owner, perm.Role)
	})
}

func TestService_CheckEventAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv()
	eventID := uuid.New()

	manager := env.addUser(access.GlobalMember)
	env.grant(t, manager, eventID, roles.Manager, roles.ScopeAll)

	stranger := env.addUser(access.GlobalMember)

	ok, err := env.svc.CheckEventAccess(ctx, manager, eventID, roles.Viewer)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.svc.CheckEventAccess(ctx, manager, eventID, roles.Owner)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = env.svc.CheckEventAccess(ctx, stranger, eventID, roles.Viewer)
	require.NoError(t, err)
	assert.False(t, ok, "no grant means no access, not viewer")
}

func TestService_NamedPredicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv()
	eventID := uuid.New()

	admin := env.addUser(access.GlobalAdmin)
	manager := env.addUser(access.GlobalMember)
	env.grant(t, manager, eventID, roles.Manager, roles.ScopeAll)

	t.Run("admin can delete event with zero grant rows", func(t *testing.T) {
		ok, err := env.svc.CanDeleteEvent(ctx, admin, eventID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("manager manages but cannot delete", func(t *testing.T) {
		ok, err := env.svc.CanManageEvent(ctx, manager, eventID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = env.svc.CanDeleteEvent(ctx, manager, eventID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("scoped overseer manages attendants within scope", func(t *testing.T) {
		overseer := env.addUser(access.GlobalMember)
		env.grant(t, overseer, eventID, roles.Overseer, "audio")

		ok, scope, err := env.svc.CanManageAttendants(ctx, overseer, eventID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, roles.Scope("audio"), scope)
		assert.True(t, scope.IsRestricted(), "capability alone is not unrestricted access")
	})

	t.Run("viewer cannot manage attendants", func(t *testing.T) {
		viewer := env.addUser(access.GlobalMember)
		env.grant(t, viewer, eventID, roles.Viewer, roles.ScopeAll)

		ok, scope, err := env.svc.CanManageAttendants(ctx, viewer, eventID)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, roles.ScopeAll, scope)
	})
}

func TestService_ListGrants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv()
	eventID := uuid.New()

	owner := env.addUser(access.GlobalMember)
	manager := env.addUser(access.GlobalMember)
	env.grant(t, owner, eventID, roles.Owner, roles.ScopeAll)
	env.grant(t, manager, eventID, roles.Manager, roles.ScopeAll)

	rows, err := env.svc.ListGrants(ctx, owner, eventID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = env.svc.ListGrants(ctx, manager, eventID)
	assert.True(t, errors.Is(err, access.ErrForbidden))
}
