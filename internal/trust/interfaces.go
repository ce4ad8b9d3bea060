package trust

import "context"

// SecretSource resolves the expected shared signing secret for a claimed
// service identity. Implementations must distinguish an unknown service
// (return ErrUnknownService) from a transient lookup failure (any other
// error), because the two map to different HTTP rejections.
type SecretSource interface {
	Secret(ctx context.Context, serviceID string) (string, error)
}

// StaticSecretSource is a SecretSource backed by an in-memory map of
// serviceID → secret. Used for deployments without a registry database and
// for injecting fake secrets in tests.
type StaticSecretSource map[string]string

// Secret implements [SecretSource].
func (s StaticSecretSource) Secret(_ context.Context, serviceID string) (string, error) {
	secret, ok := s[serviceID]
	if !ok {
		return "", ErrUnknownService
	}
	return secret, nil
}
