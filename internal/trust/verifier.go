package trust

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/opencampus/platform/models"
)

// DefaultMaxSkew is the default freshness window for credential timestamps.
// A credential is accepted when |now - timestamp| <= window (boundary
// inclusive).
const DefaultMaxSkew = 300 * time.Second

// Verifier validates inbound signed credentials: it recomputes the
// signature over the received body, checks freshness, and optionally
// consumes the credential in a replay cache.
//
// A Verifier is read-only after construction (the replay cache handles its
// own locking) and safe for concurrent use.
type Verifier struct {
	secrets SecretSource
	maxSkew time.Duration
	replays *ReplayCache // nil disables replay protection

	nowFn func() time.Time
}

// NewVerifier constructs a Verifier using the given secret lookup.
// A non-positive maxSkew falls back to DefaultMaxSkew. Passing a nil
// replays cache disables replay consumption, leaving the timestamp window
// as the only replay defense.
func NewVerifier(secrets SecretSource, maxSkew time.Duration, replays *ReplayCache) *Verifier {
	if maxSkew <= 0 {
		maxSkew = DefaultMaxSkew
	}

	return &Verifier{
		secrets: secrets,
		maxSkew: maxSkew,
		replays: replays,
		nowFn:   time.Now,
	}
}

// Verify validates cred against the body actually received.
//
// The function is total over its failure modes — every distinguishable
// rejection maps to one sentinel error:
//   - ErrMalformedCredential: incomplete credential fields;
//   - ErrUnknownService: unrecognized service ID or no registered secret;
//   - ErrSecretSourceUnavailable: transient secret lookup failure;
//   - ErrInvalidSignature: recomputed signature mismatch (constant-time
//     comparison);
//   - ErrStaleCredential: timestamp outside the skew window, past or future;
//   - ErrReplayDetected: duplicate use of a still-fresh credential.
//
// On success it returns the identity of the verified caller.
func (v *Verifier) Verify(ctx context.Context, cred models.Credential, body []byte) (models.ServiceIdentity, error) {
	if cred.APIKey == "" || cred.Timestamp == 0 || cred.Signature == "" {
		return models.ServiceIdentity{}, fmt.Errorf("%w: incomplete signing headers", ErrMalformedCredential)
	}

	serviceID := models.ServiceName(cred.ServiceID)
	if !serviceID.Valid() {
		return models.ServiceIdentity{}, fmt.Errorf("%w: %q", ErrUnknownService, cred.ServiceID)
	}

	secret, err := v.secrets.Secret(ctx, cred.ServiceID)
	if err != nil {
		if errors.Is(err, ErrUnknownService) {
			return models.ServiceIdentity{}, fmt.Errorf("%w: %q", ErrUnknownService, cred.ServiceID)
		}
		return models.ServiceIdentity{}, fmt.Errorf("%w: %w", ErrSecretSourceUnavailable, err)
	}

	payload, err := CanonicalPayload(cred.ServiceID, cred.Timestamp, body)
	if err != nil {
		return models.ServiceIdentity{}, fmt.Errorf("%w: %w", ErrMalformedCredential, err)
	}

	expected := signPayload(secret, payload)
	if !hmac.Equal([]byte(expected), []byte(cred.Signature)) {
		return models.ServiceIdentity{}, fmt.Errorf("%w: service %q", ErrInvalidSignature, cred.ServiceID)
	}

	skew := v.nowFn().Unix() - cred.Timestamp
	if skew < 0 {
		skew = -skew
	}
	if skew > int64(v.maxSkew/time.Second) {
		return models.ServiceIdentity{}, fmt.Errorf("%w: timestamp %d is %ds outside the window", ErrStaleCredential, cred.Timestamp, skew)
	}

	if v.replays != nil {
		key := cred.ServiceID + ":" + strconv.FormatInt(cred.Timestamp, 10) + ":" + cred.Signature
		if !v.replays.Claim(key) {
			return models.ServiceIdentity{}, fmt.Errorf("%w: service %q timestamp %d", ErrReplayDetected, cred.ServiceID, cred.Timestamp)
		}
	}

	return models.ServiceIdentity{ServiceID: serviceID}, nil
}
