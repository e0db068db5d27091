package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assemblyhq/eventkit/pkg/access"
	"github.com/assemblyhq/eventkit/pkg/roles"
)

func TestPermission_CapabilityTable(t *testing.T) {
	t.Parallel()

	perm := func(r roles.Role, s roles.Scope) *access.Permission {
		return &access.Permission{Role: r, Scope: s}
	}

	tests := []struct {
		name              string
		perm              *access.Permission
		canView           bool
		canManageContent  bool
		canEditSettings   bool
		canManagePerms    bool
		canDeleteEvent    bool
		contentRestricted bool
	}{
		{
			name: "owner", perm: perm(roles.Owner, roles.ScopeAll),
			canView: true, canManageContent: true, canEditSettings: true,
			canManagePerms: true, canDeleteEvent: true,
		},
		{
			name: "manager", perm: perm(roles.Manager, roles.ScopeAll),
			canView: true, canManageContent: true, canEditSettings: true,
		},
		{
			name: "overseer unscoped", perm: perm(roles.Overseer, roles.ScopeAll),
			canView: true, canManageContent: true,
		},
		{
			name: "overseer scoped", perm: perm(roles.Overseer, "audio"),
			canView: true, canManageContent: true, contentRestricted: true,
		},
		{
			name: "keyman", perm: perm(roles.Keyman, "parking"),
			canView: true, contentRestricted: true,
		},
		{
			name: "viewer", perm: perm(roles.Viewer, roles.ScopeAll),
			canView: true,
		},
		{
			name: "no access",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.canView, tt.perm.CanView(), "CanView")
			assert.Equal(t, tt.canManageContent, tt.perm.CanManageContent(), "CanManageContent")
			assert.Equal(t, tt.canEditSettings, tt.perm.CanEditSettings(), "CanEditSettings")
			assert.Equal(t, tt.canManagePerms, tt.perm.CanManagePermissions(), "CanManagePermissions")
			assert.Equal(t, tt.canDeleteEvent, tt.perm.CanDeleteEvent(), "CanDeleteEvent")

			_, restricted := tt.perm.ContentScope()
			assert.Equal(t, tt.contentRestricted, restricted, "ContentScope restricted")
		})
	}
}

func TestPermission_ContentScope(t *testing.T) {
	t.Parallel()

	scoped := &access.Permission{Role: roles.Overseer, Scope: "audio"}
	scope, restricted := scoped.ContentScope()
	assert.Equal(t, roles.Scope("audio"), scope)
	assert.True(t, restricted)

	unscoped := &access.Permission{Role: roles.Overseer}
	scope, restricted = unscoped.ContentScope()
	assert.Equal(t, roles.ScopeAll, scope)
	assert.False(t, restricted)

	var none *access.Permission
	scope, restricted = none.ContentScope()
	assert.Equal(t, roles.ScopeAll, scope)
	assert.False(t, restricted)
}

func TestPermission_AtLeast(t *testing.T) {
	t.Parallel()

	manager := &access.Permission{Role: roles.Manager}
	assert.True(t, manager.AtLeast(roles.Viewer))
	assert.True(t, manager.AtLeast(roles.Manager))
	assert.False(t, manager.AtLeast(roles.Owner))

	var none *access.Permission
	assert.False(t, none.AtLeast(roles.Viewer))
}

func TestPermission_InvalidRolePanics(t *testing.T) {
	t.Parallel()

	bogus := &access.Permission{Role: "superuser"}
	assert.Panics(t, func() { bogus.CanManageContent() })
	assert.Panics(t, func() { bogus.CanEditSettings() })
	assert.Panics(t, func() { bogus.CanManagePermissions() })
	assert.Panics(t, func() { bogus.CanDeleteEvent() })
	assert.Panics(t, func() { bogus.AtLeast(roles.Viewer) })
}
