// Package trust implements the inter-service trust layer of the platform:
// the request-signing scheme used on outbound service-to-service calls, the
// verifier applied to inbound signed requests, and the per-process
// AuthClient that bundles both sides for one service identity.
//
// The wire format is deliberately small: a caller sends its API key,
// declared service ID, a timestamp in epoch seconds, and a lowercase hex
// HMAC-SHA256 signature computed over the canonical payload
//
//	serviceId + ":" + timestamp + ":" + JSON(body)
//
// keyed by a per-deployment shared secret. Canonicalization is a versioned,
// shared routine (see CanonicalBody) used identically by signer and
// verifier; any divergence in JSON encoding between the two sides breaks
// every signature.
package trust
