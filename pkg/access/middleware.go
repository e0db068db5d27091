package access

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/assemblyhq/eventkit/pkg/roles"
)

// URLParamEventID is the chi route parameter holding the event identifier.
const URLParamEventID = "eventID"

// Require creates chi middleware that resolves the caller's permission on
// the event named by the {eventID} route parameter and rejects requests
// below the minimum role. On success the resolved permission is stored in
// the request context for handlers downstream.
//
// Responses: 401 when no identity is in the context, 404 when the event ID
// is malformed or the caller has no access at all (so the existence of
// events the caller cannot see is not leaked), 403 when the caller has
// access but an insufficient role, 503 when the grant store fails.
func Require(svc *Service, minimum roles.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
				return
			}

			eventID, err := uuid.Parse(chi.URLParam(r, URLParamEventID))
			if err != nil {
				writeError(w, http.StatusNotFound, ErrNotFound.Error())
				return
			}

			perm, err := svc.ResolveIdentity(r.Context(), identity, eventID)
			if err != nil {
				writeError(w, http.StatusServiceUnavailable, "access resolution failed")
				return
			}
			if perm == nil {
				writeError(w, http.StatusNotFound, ErrNotFound.Error())
				return
			}
			if !perm.AtLeast(minimum) {
				writeError(w, http.StatusForbidden, ErrForbidden.Error())
				return
			}

			ctx := WithPermission(r.Context(), perm)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
