package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the claim set carried by platform user tokens.
//
// The standard registered claims (iss, sub, iat, exp) are used for issuer
// validation and expiry; Role and Email are platform-specific claims needed
// to build a ServiceIdentity without a database round trip on every request.
type UserClaims struct {
	jwt.RegisteredClaims

	// Role is the user's platform role at token issuance time.
	Role UserRole `json:"role"`

	// Email is the user's login email.
	Email string `json:"email"`
}

// Token wraps a parsed or freshly issued user JWT together with the fields
// the trust layer actually consumes.
type Token struct {
	// Token is the underlying JWT, kept for claim inspection. Excluded from
	// JSON because only the compact string form is meaningful on the wire.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS serialization
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the subject claim parsed to the platform user identifier.
	UserID int64 `json:"-"`

	// Role is the role claim.
	Role UserRole `json:"-"`

	// Email is the email claim.
	Email string `json:"-"`
}

// Identity converts the token into the request-scoped principal shape used
// by the authorization layer.
func (t Token) Identity() ServiceIdentity {
	return ServiceIdentity{
		UserID: t.UserID,
		Email:  t.Email,
		Role:   t.Role,
	}
}

// String returns the compact JWS serialization of the token.
// It implements [fmt.Stringer].
func (t Token) String() string {
	return t.SignedString
}
