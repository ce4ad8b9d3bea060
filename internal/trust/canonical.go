package trust

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
)

// CanonicalVersion identifies the canonicalization format in use. Bump it
// if the payload composition or JSON encoding rules ever change; signer and
// verifier must always agree on the same version.
const CanonicalVersion = "v1"

// CanonicalBody returns the v1 canonical JSON encoding of a request body.
//
// Rules:
//   - an empty or absent body canonicalizes to "{}" — the serialized empty
//     object, not the empty string, so bodyless GETs sign the same payload
//     the verifier recomputes;
//   - otherwise the raw bytes are decoded and re-marshaled with Go's
//     compact encoding: no insignificant whitespace, object keys sorted
//     lexicographically, numeric literals preserved verbatim.
//
// Decoding and re-marshaling (rather than hashing the raw bytes) makes the
// signature insensitive to whitespace differences between HTTP clients
// while staying sensitive to every value change.
func CanonicalBody(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []byte("{}"), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber() // keep numeric literals exact across the round trip

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("canonicalize body: %w", err)
	}

	canonical, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("canonicalize body: %w", err)
	}

	return canonical, nil
}

// CanonicalPayload composes the exact string the signature is computed
// over: serviceId + ":" + timestamp + ":" + canonical JSON body.
func CanonicalPayload(serviceID string, timestamp int64, body []byte) (string, error) {
	canonical, err := CanonicalBody(body)
	if err != nil {
		return "", err
	}

	return serviceID + ":" + strconv.FormatInt(timestamp, 10) + ":" + string(canonical), nil
}

// signPayload computes the lowercase hex HMAC-SHA256 digest of payload
// keyed by secret.
func signPayload(secret, payload string) string {
	hasher := hmac.New(sha256.New, []byte(secret))
	hasher.Write([]byte(payload))
	return hex.EncodeToString(hasher.Sum(nil))
}
