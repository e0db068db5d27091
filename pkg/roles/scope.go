package roles

// Scope optionally narrows a grant to a sub-part of an event, such as a
// department or position group. The empty scope means the whole event.
type Scope string

// ScopeAll is the full-event scope.
const ScopeAll Scope = ""

// IsRestricted reports whether the scope narrows the grant to a sub-part
// of the event.
func (s Scope) IsRestricted() bool {
	return s != ScopeAll
}

// String returns the wire form of the scope.
func (s Scope) String() string {
	return string(s)
}

// Scopable reports whether a role may carry a restricting scope. Only the
// mid-tier management roles are scoped: full-event roles manage everything
// and viewer reads everything, so a scope on them would be meaningless.
func Scopable(r Role) bool {
	switch r {
	case Overseer, Keyman:
		return true
	case Owner, Manager, Viewer:
		return false
	}
	panic("roles: invalid role " + string(r))
}

// NormalizeScope discards a scope carried by a role that cannot be scoped,
// so a stray scope value on an owner grant never narrows anything.
func NormalizeScope(r Role, s Scope) Scope {
	if !Scopable(r) {
		return ScopeAll
	}
	return s
}
