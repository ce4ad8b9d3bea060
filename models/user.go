package models

import "time"

// User represents a platform account used for end-user authentication.
// Sensitive fields never leave the trust boundary.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password carries the plain-text password only on inbound
	// register/login requests. It is hashed before any persistence and is
	// never serialized back to callers.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id digest stored for the account.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is the user's platform role.
	Role UserRole `json:"role"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table backing the User model.
func (u User) TableName() string {
	return "users"
}

// RegisteredService is one row of the service registry: the provisioned
// API key and shared signing secret for a backend service. Loaded by the
// verifier via secret lookup; never exposed over HTTP.
type RegisteredService struct {
	// ServiceID is the registered service identity.
	ServiceID string `json:"service_id"`

	// APIKey is the non-secret key identifier issued to the service.
	APIKey string `json:"-"`

	// Secret is the shared HMAC signing secret. Confidential.
	Secret string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table backing the RegisteredService model.
func (s RegisteredService) TableName() string {
	return "services"
}
