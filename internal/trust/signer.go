package trust

import (
	"fmt"
	"time"

	"github.com/opencampus/platform/models"
)

// Signer produces signed, timestamped credentials for outbound
// service-to-service calls made under one service identity.
//
// A Signer is read-only after construction and safe for concurrent use.
type Signer struct {
	serviceID string
	apiKey    string
	secret    string

	nowFn func() time.Time
}

// NewSigner constructs a Signer for the given caller identity.
//
// Returns ErrMissingConfiguration if the service ID, API key, or shared
// secret is empty: signing credentials must be provisioned before any
// outbound call, and the signer never silently signs with an empty key.
func NewSigner(serviceID models.ServiceName, apiKey, secret string) (*Signer, error) {
	if serviceID == "" {
		return nil, fmt.Errorf("%w: service ID is empty", ErrMissingConfiguration)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key for %q is empty", ErrMissingConfiguration, serviceID)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: shared secret for %q is empty", ErrMissingConfiguration, serviceID)
	}

	return &Signer{
		serviceID: string(serviceID),
		apiKey:    apiKey,
		secret:    secret,
		nowFn:     time.Now,
	}, nil
}

// Sign produces a credential over body for the current time.
//
// The credential's signature is deterministic given (secret, serviceId,
// timestamp, body) — there is no nonce — so the timestamp carried in the
// credential is the verifier's sole freshness anchor.
//
// Sign is a pure function of its inputs and the clock; it has no side
// effects and allocates a fresh Credential per call.
func (s *Signer) Sign(body []byte) (models.Credential, error) {
	timestamp := s.nowFn().Unix()

	payload, err := CanonicalPayload(s.serviceID, timestamp, body)
	if err != nil {
		return models.Credential{}, err
	}

	return models.Credential{
		APIKey:    s.apiKey,
		ServiceID: s.serviceID,
		Timestamp: timestamp,
		Signature: signPayload(s.secret, payload),
	}, nil
}
