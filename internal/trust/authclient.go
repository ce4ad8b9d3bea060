package trust

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opencampus/platform/internal/config"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/models"
)

// AuthClient bundles the signing and verifying sides of the trust layer
// for one service identity. One AuthClient exists per running service
// process; it is constructed once at startup from deployment secrets and
// is read-only for the process lifetime.
type AuthClient struct {
	serviceID models.ServiceName
	signer    *Signer
	verifier  *Verifier
	logger    *logger.Logger
}

// NewAuthClient constructs the process-wide AuthClient from the trust
// configuration and a secret source for verifying peers.
//
// Fails with ErrMissingConfiguration when the process's own service ID,
// API key, or shared secret is unset — a service must not accept or emit
// traffic without provisioned credentials.
func NewAuthClient(cfg config.Trust, secrets SecretSource, log *logger.Logger) (*AuthClient, error) {
	serviceID := models.ServiceName(cfg.ServiceID)
	if !serviceID.Valid() {
		return nil, fmt.Errorf("%w: unrecognized service ID %q", ErrMissingConfiguration, cfg.ServiceID)
	}

	signer, err := NewSigner(serviceID, cfg.APIKey, cfg.Secret)
	if err != nil {
		return nil, err
	}

	var replays *ReplayCache
	if cfg.ReplayProtection {
		maxSkew := cfg.MaxSkew
		if maxSkew <= 0 {
			maxSkew = DefaultMaxSkew
		}
		replays = NewReplayCache(maxSkew, cfg.ReplayCacheSize)
	}

	log.Info().
		Str("service_id", cfg.ServiceID).
		Bool("replay_protection", cfg.ReplayProtection).
		Msg("auth client created")

	return &AuthClient{
		serviceID: serviceID,
		signer:    signer,
		verifier:  NewVerifier(secrets, cfg.MaxSkew, replays),
		logger:    log,
	}, nil
}

// ServiceID returns the identity this client signs and verifies as.
func (c *AuthClient) ServiceID() models.ServiceName {
	return c.serviceID
}

// Sign produces a fresh signed credential over body for an outbound call.
func (c *AuthClient) Sign(body []byte) (models.Credential, error) {
	return c.signer.Sign(body)
}

// VerifyIncoming extracts the signed credential from the request headers
// and validates it against the received body.
//
// Returns ErrMalformedCredential when the headers carry no service
// credential at all; otherwise the verifier's taxonomy applies.
func (c *AuthClient) VerifyIncoming(ctx context.Context, headers http.Header, body []byte) (models.ServiceIdentity, error) {
	cred, ok := models.CredentialFromHeaders(headers)
	if !ok {
		return models.ServiceIdentity{}, fmt.Errorf("%w: no signing headers present", ErrMalformedCredential)
	}

	return c.verifier.Verify(ctx, cred, body)
}
