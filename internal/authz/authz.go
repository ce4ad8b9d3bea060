// Package authz implements the resource/action authorization model layered
// on top of authentication.
//
// Two kinds of principals are evaluated:
//   - backend services are implicitly authorized for their own domain's
//     resources, plus any cross-domain grants registered in the policy
//     table (e.g. the course service creating payments);
//   - end users are authorized by role against a static resource/action
//     table, with instructor writes to courses additionally gated by
//     resource ownership.
//
// The policy table is a Casbin enforcer built from an in-memory model.
// Decisions are computed fresh per request and never cached.
package authz

import (
	"context"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/models"
)

// Resource and action names used by the platform policy.
const (
	ResourceCourses       = "courses"
	ResourcePayments      = "payments"
	ResourceFiles         = "files"
	ResourceNotifications = "notifications"
	ResourceUsers         = "users"

	ActionRead  = "read"
	ActionWrite = "write"
)

// casbinModel is the request/policy model: subject, resource, action, with
// "*" wildcards on the policy side.
const casbinModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// rolePolicies is the static role/resource/action table for end users.
// Instructor course writes carry an additional ownership condition enforced
// in code, because ownership is per-request data, not static policy.
var rolePolicies = [][]string{
	{"role:admin", "*", "*"},
	{"role:instructor", "*", ActionRead},
	{"role:instructor", ResourceCourses, ActionWrite},
	{"role:student", "*", ActionRead},
}

// servicePolicies lists cross-domain grants for backend services beyond
// their implicit own-domain access.
var servicePolicies = [][]string{
	{"service:course-service", ResourcePayments, ActionWrite},
	{"service:course-service", ResourcePayments, ActionRead},
	{"service:course-service", ResourceNotifications, ActionWrite},
}

// serviceDomains maps each platform service to the resource it owns.
// A service is always authorized for its own domain.
var serviceDomains = map[models.ServiceName]string{
	models.CourseService:       ResourceCourses,
	models.PaymentService:      ResourcePayments,
	models.FileService:         ResourceFiles,
	models.NotificationService: ResourceNotifications,
	models.UserService:         ResourceUsers,
}

// OwnerInfo carries per-request resource ownership data into a decision.
// Known is false when the route has no existing resource (e.g. creation),
// in which case ownership cannot and does not constrain the write.
type OwnerInfo struct {
	Known  bool
	UserID int64
}

// Authorizer evaluates (identity, resource, action) triples against the
// platform policy. It is read-only after construction and safe for
// concurrent use.
type Authorizer struct {
	enforcer casbin.IEnforcer
	logger   *logger.Logger
}

// NewAuthorizer builds the Casbin enforcer from the embedded model and
// loads the static policy tables.
func NewAuthorizer(log *logger.Logger) (*Authorizer, error) {
	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}

	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("load role policy: %w", err)
		}
	}
	for _, p := range servicePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("load service policy: %w", err)
		}
	}

	log.Info().
		Int("role_policies", len(rolePolicies)).
		Int("service_policies", len(servicePolicies)).
		Msg("authorizer created")

	return &Authorizer{enforcer: enforcer, logger: log}, nil
}

// Authorize decides whether identity may perform action on resource.
//
// The returned decision's Reason is safe to show the caller. An error is
// returned only when the policy engine itself fails; such failures are
// internal and map to a 500, never to a deny.
//
// Authorize itself emits no log output; the HTTP layer logs each rejection
// once when writing the response.
func (a *Authorizer) Authorize(ctx context.Context, identity models.ServiceIdentity, resource, action string, owner OwnerInfo) (models.AuthorizationDecision, error) {
	if identity.IsService() {
		return a.authorizeService(identity, resource, action)
	}

	return a.authorizeUser(identity, resource, action, owner)
}

func (a *Authorizer) authorizeService(identity models.ServiceIdentity, resource, action string) (models.AuthorizationDecision, error) {
	if serviceDomains[identity.ServiceID] == resource {
		return models.AuthorizationDecision{Allow: true, Reason: "service domain resource"}, nil
	}

	allowed, err := a.enforcer.Enforce("service:"+string(identity.ServiceID), resource, action)
	if err != nil {
		return models.AuthorizationDecision{}, fmt.Errorf("enforce service policy: %w", err)
	}
	if !allowed {
		return models.AuthorizationDecision{Allow: false, Reason: "insufficient permissions"}, nil
	}

	return models.AuthorizationDecision{Allow: true, Reason: "service grant"}, nil
}

func (a *Authorizer) authorizeUser(identity models.ServiceIdentity, resource, action string, owner OwnerInfo) (models.AuthorizationDecision, error) {
	if !identity.Role.Valid() {
		return models.AuthorizationDecision{Allow: false, Reason: "insufficient role"}, nil
	}

	allowed, err := a.enforcer.Enforce("role:"+string(identity.Role), resource, action)
	if err != nil {
		return models.AuthorizationDecision{}, fmt.Errorf("enforce role policy: %w", err)
	}
	if !allowed {
		return models.AuthorizationDecision{Allow: false, Reason: "insufficient role"}, nil
	}

	// Instructors write only to courses they own. Admins are exempt, and
	// creation (no existing owner) is unconstrained.
	if identity.Role == models.RoleInstructor && resource == ResourceCourses && action == ActionWrite {
		if owner.Known && owner.UserID != identity.UserID {
			return models.AuthorizationDecision{Allow: false, Reason: "not resource owner"}, nil
		}
	}

	return models.AuthorizationDecision{Allow: true, Reason: "role grant"}, nil
}
