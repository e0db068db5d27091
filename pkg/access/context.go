package access

import (
	"context"
	"log/slog"
)

// identityCtxKey is the context key for the authenticated identity.
type identityCtxKey struct{}

// WithIdentity stores the authenticated caller's identity in the context.
// The authentication layer calls this once per request.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext retrieves the authenticated identity from the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}

// permissionCtxKey is the context key for the resolved event permission.
type permissionCtxKey struct{}

// WithPermission stores a resolved permission in the context so handlers
// behind the middleware reuse it instead of a second store read. The value
// is request-scoped; it is never carried across requests.
func WithPermission(ctx context.Context, perm *Permission) context.Context {
	return context.WithValue(ctx, permissionCtxKey{}, perm)
}

// PermissionFromContext retrieves the resolved permission from the context.
func PermissionFromContext(ctx context.Context) (*Permission, bool) {
	perm, ok := ctx.Value(permissionCtxKey{}).(*Permission)
	return perm, ok
}

// LoggerExtractor returns a context extractor for the logger that records
// the resolved role and user ID on every log line within a request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		identity, ok := IdentityFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		attrs := []slog.Attr{slog.String("user_id", identity.UserID.String())}
		if perm, ok := PermissionFromContext(ctx); ok && perm != nil {
			attrs = append(attrs, slog.String("role", perm.Role.String()))
		}
		return slog.Attr{Key: "access", Value: slog.GroupValue(attrs...)}, true
	}
}
