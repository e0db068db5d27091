package roles

import "errors"

// ErrUnknownRole is returned by Parse for strings outside the role set.
var ErrUnknownRole = errors.New("roles.unknown_role")
