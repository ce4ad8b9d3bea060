// Package utils provides general-purpose helpers shared by the platform
// services: type-safe context keys, HTTP response writing, HTTP client
// initialization, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/opencampus/platform/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents collisions with
// other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authentication middleware
// stores the request's authenticated principal.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, identity)
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated principal from the
// context.
//
// Returns the identity and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // authentication middleware did not run
//	}
func GetIdentityFromContext(ctx context.Context) (models.ServiceIdentity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.ServiceIdentity)
	return identity, ok
}
