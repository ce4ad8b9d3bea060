package models

// UserRole is the closed set of roles an end user can hold on the platform.
// The role drives the default authorization table when no finer-grained
// resource policy exists.
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// Valid reports whether r is one of the recognized user roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// ServiceName is the closed enumeration of deployable platform services.
// A credential whose declared service identity is not in this set is
// rejected before any signature work is done.
type ServiceName string

const (
	CourseService       ServiceName = "course-service"
	PaymentService      ServiceName = "payment-service"
	FileService         ServiceName = "file-service"
	NotificationService ServiceName = "notification-service"
	UserService         ServiceName = "user-service"
)

// Valid reports whether s names a recognized platform service.
func (s ServiceName) Valid() bool {
	switch s {
	case CourseService, PaymentService, FileService, NotificationService, UserService:
		return true
	}
	return false
}

// ServiceIdentity represents one authenticated principal: either a backend
// service (ServiceID set) or an end user (UserID/Email/Role set).
//
// An identity is constructed once per request by the authentication
// middleware, attached to the request context, and discarded when the
// request completes. It is never persisted and never mutated after
// construction.
type ServiceIdentity struct {
	// ServiceID is the declared identity of a calling backend service.
	// Empty for end-user identities.
	ServiceID ServiceName `json:"service_id,omitempty"`

	// UserID is the platform user identifier. Zero for service identities.
	UserID int64 `json:"user_id,omitempty"`

	// Email is the user's login email. Empty for service identities.
	Email string `json:"email,omitempty"`

	// Role is the user's platform role. Empty for service identities.
	Role UserRole `json:"role,omitempty"`
}

// IsService reports whether the identity belongs to a backend service
// rather than an end user.
func (i ServiceIdentity) IsService() bool {
	return i.ServiceID != ""
}

// AuthorizationDecision is the outcome of evaluating one
// (identity, resource, action) triple. Decisions are computed fresh per
// request and never cached, because the underlying policy may be reloaded.
type AuthorizationDecision struct {
	// Allow is true when the identity may perform the action on the resource.
	Allow bool `json:"allow"`

	// Reason is a caller-safe explanation of the decision. It must never
	// leak policy internals beyond "insufficient role" / "not resource owner".
	Reason string `json:"reason"`
}
