package access

import "github.com/assemblyhq/eventkit/pkg/roles"

// ResolveOverride returns the implicit full-owner permission for global
// administrators, or nil for everyone else. This is the only place the
// admin bypass exists: keeping it off the grant table means admin access
// can never be revoked by deleting or forgetting a grant row.
//
// A non-nil result short-circuits resolution; the grant store is not even
// queried.
func ResolveOverride(identity Identity) *Permission {
	if identity.GlobalRole != GlobalAdmin {
		return nil
	}
	return &Permission{
		Role:           roles.Owner,
		Scope:          roles.ScopeAll,
		GlobalOverride: true,
	}
}
