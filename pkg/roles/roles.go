package roles

import "fmt"

// Role is an event-level role. The set is closed; values outside it are a
// programming error, not user input to be tolerated.
type Role string

const (
	// Owner has every capability including event deletion and permission
	// management. Multiple users may hold Owner on the same event.
	Owner Role = "owner"

	// Manager manages content and settings but cannot delete the event or
	// edit permissions.
	Manager Role = "manager"

	// Overseer manages content; with a scope the management is restricted
	// to that scope, without one it behaves as a full content manager.
	Overseer Role = "overseer"

	// Keyman handles their own assignments within a scope; read access only
	// beyond that.
	Keyman Role = "keyman"

	// Viewer has read-only access to the event.
	Viewer Role = "viewer"
)

// rank orders roles by capability breadth. Higher means broader.
var rank = map[Role]int{
	Viewer:   1,
	Keyman:   2,
	Overseer: 3,
	Manager:  4,
	Owner:    5,
}

// All lists the role set from broadest to narrowest.
func All() []Role {
	return []Role{Owner, Manager, Overseer, Keyman, Viewer}
}

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}

// Parse converts a stored or user-supplied string into a Role.
// Returns ErrUnknownRole for anything outside the closed set.
func Parse(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Rank returns the position of r in the total order; higher ranks imply
// broader capabilities. Rank panics on a value outside the role set to
// enforce fail-fast initialization: such a value can only come from code
// that skipped Parse, never from data.
func Rank(r Role) int {
	n, ok := rank[r]
	if !ok {
		panic(fmt.Errorf("roles: invalid role %q", r))
	}
	return n
}

// AtLeast reports whether role sits at or above threshold in the order.
func AtLeast(role, threshold Role) bool {
	return Rank(role) >= Rank(threshold)
}
