package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/opencampus/platform/internal/trust"
)

// RegistrySecretSource adapts a [ServiceRegistry] to the signing-secret
// lookup interface used during request verification.
//
// Lookup failures are split into two categories: a missing registry row means
// the caller is unknown, while any database-level failure means the secret is
// temporarily unavailable. The distinction matters because only the former
// indicates a bad credential; the latter must never be reported as one.
type RegistrySecretSource struct {
	registry ServiceRegistry
}

// NewRegistrySecretSource wraps registry as a secret source for verification.
func NewRegistrySecretSource(registry ServiceRegistry) *RegistrySecretSource {
	return &RegistrySecretSource{registry: registry}
}

// Secret returns the shared signing secret registered for serviceID.
func (s *RegistrySecretSource) Secret(ctx context.Context, serviceID string) (string, error) {
	service, err := s.registry.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			return "", trust.ErrUnknownService
		}
		return "", fmt.Errorf("%w: %w", trust.ErrSecretSourceUnavailable, err)
	}

	return service.Secret, nil
}
