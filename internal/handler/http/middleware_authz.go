package http

import (
	"net/http"

	"github.com/opencampus/platform/internal/authz"
	"github.com/opencampus/platform/internal/trust"
	"github.com/opencampus/platform/internal/utils"
)

// OwnerLookup resolves the owner of the resource a request targets, for
// routes where writes are gated by ownership. A nil lookup (or a lookup
// returning an unknown owner) leaves the decision to role policy alone.
type OwnerLookup func(r *http.Request) (authz.OwnerInfo, error)

// requireAuthorization builds a middleware enforcing that the authenticated
// principal may perform action on resource.
//
// A missing identity in the context means the authentication middleware did
// not run; that is a wiring bug and surfaces as a 500, never a 401 — the
// client did nothing wrong and must not be told to retry with credentials.
func (h *Handler) requireAuthorization(resource, action string, owner OwnerLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, ok := utils.GetIdentityFromContext(ctx)
			if !ok {
				h.writeError(w, r, http.StatusInternalServerError, "authorization without authentication",
					trust.ErrUnauthenticated)
				return
			}

			ownerInfo := authz.OwnerInfo{}
			if owner != nil {
				info, err := owner(r)
				if err != nil {
					h.rejectWithError(w, r, "resource owner lookup failed", err)
					return
				}
				ownerInfo = info
			}

			decision, err := h.authorizer.Authorize(ctx, identity, resource, action, ownerInfo)
			if err != nil {
				h.writeError(w, r, http.StatusInternalServerError, "authorization failed", err)
				return
			}
			if !decision.Allow {
				h.writeError(w, r, http.StatusForbidden, decision.Reason, trust.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
