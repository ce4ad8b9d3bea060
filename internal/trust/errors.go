package trust

import "errors"

// Sentinel errors forming the complete failure taxonomy of the trust layer.
// Every rejection the verifier or authorizer can produce maps to exactly one
// of these values; callers match with [errors.Is].
var (
	// ErrMissingConfiguration indicates that the service's own signing
	// secret or API key was not provisioned. It is fatal at startup: a
	// service must never sign with an empty key or start accepting traffic
	// without one.
	ErrMissingConfiguration = errors.New("missing trust configuration")

	// ErrMalformedCredential indicates the request carried an incomplete or
	// unparsable set of signing headers (missing API key, zero timestamp,
	// empty signature).
	ErrMalformedCredential = errors.New("malformed service credential")

	// ErrUnknownService indicates the declared service ID is not a
	// recognized platform service or has no registered secret.
	ErrUnknownService = errors.New("unknown service")

	// ErrInvalidSignature indicates the recomputed signature does not match
	// the one presented: the request was tampered with or signed with the
	// wrong secret.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrStaleCredential indicates the credential timestamp falls outside
	// the allowed clock-skew window, in either direction.
	ErrStaleCredential = errors.New("stale credential")

	// ErrReplayDetected indicates an identical, still-fresh credential was
	// presented a second time while replay protection is enabled.
	ErrReplayDetected = errors.New("credential replay detected")

	// ErrSecretSourceUnavailable indicates the secret lookup failed for a
	// transient reason (e.g. the registry database is unreachable). Mapped
	// to 503 so callers can retry at the transport level.
	ErrSecretSourceUnavailable = errors.New("secret source unavailable")

	// ErrUnauthenticated indicates authorization ran without a prior
	// authentication step. This is an internal wiring bug, not a client
	// error, and is surfaced as a 500.
	ErrUnauthenticated = errors.New("no authenticated identity in request context")

	// ErrForbidden indicates the policy denied the (identity, resource,
	// action) triple.
	ErrForbidden = errors.New("forbidden")
)
