package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/service"
	"github.com/opencampus/platform/internal/trust"
	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
)

// authenticate is the dual-mode authentication middleware.
//
// The presence of the x-service-id header selects the mode:
//   - service mode: the signed credential headers are verified against the
//     received body. The body is read in full and restored so downstream
//     handlers see exactly the bytes that were verified.
//   - user mode: the "Authorization: Bearer <jwt>" header is validated and
//     the user identity is taken from the token claims.
//
// On success the authenticated principal is stored in the request context
// under [utils.IdentityCtxKey]. Every rejection produces the uniform error
// shape: 401 for bad credentials of either kind, 503 when the secret
// registry is unreachable (which must never read as a caller fault).
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(models.HeaderServiceID) != "" {
			h.authenticateService(next, w, r)
			return
		}

		h.authenticateUser(next, w, r)
	})
}

func (h *Handler) authenticateService(next http.Handler, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "cannot read request body", err)
		return
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	identity, err := h.auth.VerifyIncoming(ctx, r.Header, body)
	if err != nil {
		h.rejectWithError(w, r, "service credential rejected", err)
		return
	}

	ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)
	next.ServeHTTP(w, r.WithContext(ctx))
}

func (h *Handler) authenticateUser(next http.Handler, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		h.writeError(w, r, http.StatusUnauthorized, "missing credentials",
			trust.ErrMalformedCredential)
		return
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		h.writeError(w, r, http.StatusUnauthorized, "invalid authorization header", err)
		return
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, service.ErrTokenIsExpired) {
			h.writeError(w, r, http.StatusUnauthorized, "token expired", err)
			return
		}
		h.writeError(w, r, http.StatusUnauthorized, "invalid token", err)
		return
	}

	log.Debug().Int64("user_id", token.UserID).Str("role", string(token.Role)).Msg("user authenticated")

	ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity())
	next.ServeHTTP(w, r.WithContext(ctx))
}
