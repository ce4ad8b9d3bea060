package models

import (
	"net/http"
	"strconv"
)

// HTTP headers carrying the signed credential on service-to-service calls.
const (
	HeaderServiceAPIKey = "x-service-api-key"
	HeaderServiceID     = "x-service-id"
	HeaderTimestamp     = "x-timestamp"
	HeaderSignature     = "x-signature"
)

// Credential is the signed artifact accompanying a service-to-service call.
//
// The signature is a lowercase hex-encoded HMAC-SHA256 over the canonical
// payload "serviceId:timestamp:JSON(body)" keyed by the per-deployment
// shared secret. The timestamp is the sole replay defense in the wire
// format, so the verifier bounds its freshness and may additionally consume
// each credential in a replay cache.
//
// Credentials are created fresh per request and never reused.
type Credential struct {
	// APIKey identifies the caller's registered key. It is not secret and
	// travels in a request header.
	APIKey string `json:"api_key"`

	// ServiceID is the caller's declared identity. Must be a recognized
	// ServiceName.
	ServiceID string `json:"service_id"`

	// Timestamp is the signing time in integer seconds since epoch.
	Timestamp int64 `json:"timestamp"`

	// Signature is the lowercase hex HMAC-SHA256 digest of the canonical
	// payload.
	Signature string `json:"signature"`
}

// SetHeaders writes the credential into the well-known signing headers of h.
func (c Credential) SetHeaders(h http.Header) {
	h.Set(HeaderServiceAPIKey, c.APIKey)
	h.Set(HeaderServiceID, c.ServiceID)
	h.Set(HeaderTimestamp, strconv.FormatInt(c.Timestamp, 10))
	h.Set(HeaderSignature, c.Signature)
}

// CredentialFromHeaders extracts the signed credential from h.
//
// The ok result is false when the request carries no service credential at
// all (no x-service-id header), letting callers fall back to user-token
// authentication. A present but unparsable timestamp yields ok == true with
// Timestamp == 0 so that verification fails loudly instead of silently
// switching modes.
func CredentialFromHeaders(h http.Header) (Credential, bool) {
	serviceID := h.Get(HeaderServiceID)
	if serviceID == "" {
		return Credential{}, false
	}

	ts, _ := strconv.ParseInt(h.Get(HeaderTimestamp), 10, 64)
	return Credential{
		APIKey:    h.Get(HeaderServiceAPIKey),
		ServiceID: serviceID,
		Timestamp: ts,
		Signature: h.Get(HeaderSignature),
	}, true
}
