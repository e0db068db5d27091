// Package access resolves what a user may do on an event.
//
// Resolution combines two sources into one effective permission: a global
// administrator override (admins act as implicit full owners of every event,
// without a grant row existing) and the per-event grant table. The result is
// a *Permission whose nil value means no access at all — which is not the
// same as a viewer grant.
//
// Resolution is single-pass and side-effect free: the override is checked
// first and short-circuits the store entirely; otherwise at most one store
// read happens. Nothing is cached across requests, so a grant change takes
// effect on the very next resolution.
//
// Basic usage:
//
//	svc := access.NewService(identities, store)
//
//	perm, err := svc.Resolve(ctx, userID, eventID)
//	if err != nil {
//	    return err // store failure is never treated as allow or deny
//	}
//	if !perm.CanEditSettings() {
//	    return access.ErrForbidden
//	}
//
// Capability checks are nil-safe, so callers never branch on "no access"
// separately from "insufficient role":
//
//	ok, err := svc.CheckEventAccess(ctx, userID, eventID, roles.Viewer)
//
// HTTP routes are protected with the chi middleware:
//
//	r.Route("/events/{eventID}", func(r chi.Router) {
//	    r.Use(access.Require(svc, roles.Viewer))
//	    r.Get("/", showEvent)
//
//	    r.With(access.Require(svc, roles.Manager)).Post("/settings", editSettings)
//	})
package access
