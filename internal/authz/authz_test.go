package authz

import (
	"bytes"
	"context"
	"testing"

	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthorizer(t *testing.T) *Authorizer {
	t.Helper()
	a, err := NewAuthorizer(logger.Nop())
	require.NoError(t, err)
	return a
}

func user(role models.UserRole, id int64) models.ServiceIdentity {
	return models.ServiceIdentity{UserID: id, Role: role}
}

func service(name models.ServiceName) models.ServiceIdentity {
	return models.ServiceIdentity{ServiceID: name}
}

func TestAuthorize_RoleTable(t *testing.T) {
	tests := []struct {
		name       string
		identity   models.ServiceIdentity
		resource   string
		action     string
		owner      OwnerInfo
		wantAllow  bool
		wantReason string
	}{
		{
			name:       "student reads courses",
			identity:   user(models.RoleStudent, 1),
			resource:   ResourceCourses,
			action:     ActionRead,
			wantAllow:  true,
			wantReason: "role grant",
		},
		{
			name:       "student denied course write",
			identity:   user(models.RoleStudent, 1),
			resource:   ResourceCourses,
			action:     ActionWrite,
			wantAllow:  false,
			wantReason: "insufficient role",
		},
		{
			name:       "instructor writes owned course",
			identity:   user(models.RoleInstructor, 7),
			resource:   ResourceCourses,
			action:     ActionWrite,
			owner:      OwnerInfo{Known: true, UserID: 7},
			wantAllow:  true,
			wantReason: "role grant",
		},
		{
			name:       "instructor denied write to another instructor's course",
			identity:   user(models.RoleInstructor, 7),
			resource:   ResourceCourses,
			action:     ActionWrite,
			owner:      OwnerInfo{Known: true, UserID: 8},
			wantAllow:  false,
			wantReason: "not resource owner",
		},
		{
			name:       "instructor creates a new course",
			identity:   user(models.RoleInstructor, 7),
			resource:   ResourceCourses,
			action:     ActionWrite,
			owner:      OwnerInfo{},
			wantAllow:  true,
			wantReason: "role grant",
		},
		{
			name:       "instructor denied payment write",
			identity:   user(models.RoleInstructor, 7),
			resource:   ResourcePayments,
			action:     ActionWrite,
			wantAllow:  false,
			wantReason: "insufficient role",
		},
		{
			name:       "admin writes anything",
			identity:   user(models.RoleAdmin, 2),
			resource:   ResourcePayments,
			action:     ActionWrite,
			wantAllow:  true,
			wantReason: "role grant",
		},
		{
			name:       "admin writes courses it does not own",
			identity:   user(models.RoleAdmin, 2),
			resource:   ResourceCourses,
			action:     ActionWrite,
			owner:      OwnerInfo{Known: true, UserID: 99},
			wantAllow:  true,
			wantReason: "role grant",
		},
		{
			name:       "unrecognized role denied",
			identity:   user(models.UserRole("superuser"), 3),
			resource:   ResourceCourses,
			action:     ActionRead,
			wantAllow:  false,
			wantReason: "insufficient role",
		},
	}

	a := newTestAuthorizer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := a.Authorize(context.Background(), tt.identity, tt.resource, tt.action, tt.owner)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllow, decision.Allow)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

func TestAuthorize_ServiceDomains(t *testing.T) {
	tests := []struct {
		name       string
		identity   models.ServiceIdentity
		resource   string
		action     string
		wantAllow  bool
		wantReason string
	}{
		{
			name:       "payment service owns payments",
			identity:   service(models.PaymentService),
			resource:   ResourcePayments,
			action:     ActionWrite,
			wantAllow:  true,
			wantReason: "service domain resource",
		},
		{
			name:       "course service granted payment writes",
			identity:   service(models.CourseService),
			resource:   ResourcePayments,
			action:     ActionWrite,
			wantAllow:  true,
			wantReason: "service grant",
		},
		{
			name:       "course service granted notification writes",
			identity:   service(models.CourseService),
			resource:   ResourceNotifications,
			action:     ActionWrite,
			wantAllow:  true,
			wantReason: "service grant",
		},
		{
			name:       "file service denied payment writes",
			identity:   service(models.FileService),
			resource:   ResourcePayments,
			action:     ActionWrite,
			wantAllow:  false,
			wantReason: "insufficient permissions",
		},
		{
			name:       "notification service denied course writes",
			identity:   service(models.NotificationService),
			resource:   ResourceCourses,
			action:     ActionWrite,
			wantAllow:  false,
			wantReason: "insufficient permissions",
		},
	}

	a := newTestAuthorizer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := a.Authorize(context.Background(), tt.identity, tt.resource, tt.action, OwnerInfo{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllow, decision.Allow)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

// Each rejection is logged exactly once, by the HTTP layer when it writes
// the 403. The authorizer itself must stay silent on denials.
func TestAuthorize_DenialEmitsNoLog(t *testing.T) {
	a := newTestAuthorizer(t)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	denials := []struct {
		name     string
		identity models.ServiceIdentity
		resource string
		action   string
		owner    OwnerInfo
	}{
		{name: "user role denial", identity: user(models.RoleStudent, 1), resource: ResourceCourses, action: ActionWrite},
		{name: "ownership denial", identity: user(models.RoleInstructor, 7), resource: ResourceCourses, action: ActionWrite, owner: OwnerInfo{Known: true, UserID: 8}},
		{name: "service policy denial", identity: service(models.FileService), resource: ResourcePayments, action: ActionWrite},
	}

	for _, tt := range denials {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := a.Authorize(ctx, tt.identity, tt.resource, tt.action, tt.owner)
			require.NoError(t, err)
			require.False(t, decision.Allow)
			assert.Empty(t, buf.String())
		})
	}
}
