package http

import (
	"errors"
	"net/http"

	"github.com/opencampus/platform/internal/service"
	"github.com/opencampus/platform/internal/store"
	"github.com/opencampus/platform/internal/trust"
)

var errorStatusMap = map[error]int{
	trust.ErrMalformedCredential:     http.StatusUnauthorized,
	trust.ErrUnknownService:          http.StatusUnauthorized,
	trust.ErrInvalidSignature:        http.StatusUnauthorized,
	trust.ErrStaleCredential:         http.StatusUnauthorized,
	trust.ErrReplayDetected:          http.StatusUnauthorized,
	trust.ErrSecretSourceUnavailable: http.StatusServiceUnavailable,
	trust.ErrUnauthenticated:         http.StatusInternalServerError,
	trust.ErrForbidden:               http.StatusForbidden,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrCourseNotFound:      http.StatusNotFound,
	service.ErrPaymentNotFound:     http.StatusNotFound,

	store.ErrEmailAlreadyExists:       http.StatusConflict,
	store.ErrNoUserWasFound:           http.StatusNotFound,
	store.ErrServiceAlreadyRegistered: http.StatusConflict,
	store.ErrServiceNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// ErrSecretSourceUnavailable may wrap ErrUnknownService-adjacent causes;
	// check it first so transient registry failures never read as 401s.
	if errors.Is(err, trust.ErrSecretSourceUnavailable) {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
