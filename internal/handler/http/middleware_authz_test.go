package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Authorization without a preceding authentication step is a wiring bug:
// the guard must fail closed with a 500, never run the handler and never
// answer 401 (the caller did nothing wrong).
func TestRequireAuthorization_NoIdentityFailsClosed(t *testing.T) {
	h := newTestHandler(t, defaultHandlerOptions())

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rec := httptest.NewRecorder()
	h.requireAuthorization("courses", "read", nil)(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled, "handler must not run without an identity")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	response := decodeErrorResponse(t, rec)
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.Equal(t, "authorization without authentication", response.Message)
	assert.Empty(t, response.Error, "internal detail must stay out of production responses")
}

// Positive control for the same guard: with an identity in context the
// request proceeds to the handler.
func TestRequireAuthorization_IdentityPasses(t *testing.T) {
	h := newTestHandler(t, defaultHandlerOptions())

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	identity := models.ServiceIdentity{UserID: 1, Role: models.RoleStudent}
	req = req.WithContext(context.WithValue(req.Context(), utils.IdentityCtxKey, identity))

	rec := httptest.NewRecorder()
	h.requireAuthorization("courses", "read", nil)(next).ServeHTTP(rec, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// The handlers that read the identity directly carry the same fail-closed
// guard as the middleware.
func TestHandlers_NoIdentityIs500(t *testing.T) {
	h := newTestHandler(t, defaultHandlerOptions())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		target  string
	}{
		{name: "create course", handler: h.createCourse, method: http.MethodPost, target: "/api/courses"},
		{name: "purchase course", handler: h.purchaseCourse, method: http.MethodPost, target: "/api/courses/c-1/purchase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			tt.handler(rec, req)

			require.Equal(t, http.StatusInternalServerError, rec.Code)

			response := decodeErrorResponse(t, rec)
			assert.Equal(t, "error", response.Status)
			assert.Equal(t, "no authenticated identity", response.Message)
		})
	}
}
