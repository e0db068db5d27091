package access

import (
	"fmt"

	"github.com/assemblyhq/eventkit/pkg/roles"
)

// Permission is the effective permission of one user on one event, derived
// per request and never stored. A nil *Permission means no access, which is
// distinct from a viewer grant: viewer still reads, nil reads nothing.
//
// All capability methods are nil-safe and total over the closed role set.
// Role matching is exhaustive; a role value outside the set panics rather
// than falling through to an unintended default.
type Permission struct {
	Role           roles.Role  `json:"role"`
	Scope          roles.Scope `json:"scope,omitempty"`
	GlobalOverride bool        `json:"global_override"`
}

// CanView reports read access to the event. Every granted role reads.
func (p *Permission) CanView() bool {
	return p != nil
}

// CanManageContent reports whether the permission allows creating and
// editing event content (positions, attendants, count sessions). A scoped
// overseer still manages content, limited to their scope — use ContentScope
// to apply the filter; this boolean alone must not be treated as
// unrestricted access.
func (p *Permission) CanManageContent() bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case roles.Owner, roles.Manager, roles.Overseer:
		return true
	case roles.Keyman, roles.Viewer:
		return false
	}
	panic(fmt.Sprintf("access: invalid role %q", p.Role))
}

// ContentScope returns the scope content management is limited to and
// whether it is restricted at all. Unscoped roles and the global override
// report an unrestricted full-event scope.
func (p *Permission) ContentScope() (roles.Scope, bool) {
	if p == nil {
		return roles.ScopeAll, false
	}
	return p.Scope, p.Scope.IsRestricted()
}

// CanEditSettings reports whether the permission allows editing event
// settings. Reserved for the full-event management tiers.
func (p *Permission) CanEditSettings() bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case roles.Owner, roles.Manager:
		return true
	case roles.Overseer, roles.Keyman, roles.Viewer:
		return false
	}
	panic(fmt.Sprintf("access: invalid role %q", p.Role))
}

// CanManagePermissions reports whether the permission allows granting,
// changing and revoking other users' roles. Owner only.
func (p *Permission) CanManagePermissions() bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case roles.Owner:
		return true
	case roles.Manager, roles.Overseer, roles.Keyman, roles.Viewer:
		return false
	}
	panic(fmt.Sprintf("access: invalid role %q", p.Role))
}

// CanDeleteEvent reports whether the permission allows deleting the event
// itself. Owner only.
func (p *Permission) CanDeleteEvent() bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case roles.Owner:
		return true
	case roles.Manager, roles.Overseer, roles.Keyman, roles.Viewer:
		return false
	}
	panic(fmt.Sprintf("access: invalid role %q", p.Role))
}

// AtLeast reports whether the permission's role sits at or above threshold
// in the role order, false for nil.
func (p *Permission) AtLeast(threshold roles.Role) bool {
	if p == nil {
		return false
	}
	return roles.AtLeast(p.Role, threshold)
}
