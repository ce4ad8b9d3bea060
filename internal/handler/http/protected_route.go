package http

import "net/http"

// Protected wraps next with the full trust chain for one route:
// authentication strictly first, then the resource/action authorization
// check. The ordering is load-bearing — authorization must only ever see
// identities the authentication step produced.
func (h *Handler) Protected(resource, action string, owner OwnerLookup, next http.HandlerFunc) http.Handler {
	return h.authenticate(h.requireAuthorization(resource, action, owner)(next))
}
