package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opencampus/platform/internal/authz"
	"github.com/opencampus/platform/internal/config"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/service"
	"github.com/opencampus/platform/internal/store"
	"github.com/opencampus/platform/internal/trust"
	"github.com/opencampus/platform/models"
	"github.com/stretchr/testify/require"
)

type memoryUserRepository struct {
	users  map[string]models.User
	nextID int64
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[string]models.User{}, nextID: 1}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := m.users[user.Email]; ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users[user.Email] = user
	return user, nil
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

type stubPaymentCreator struct {
	payment models.Payment
	err     error
}

func (s *stubPaymentCreator) CreatePayment(_ context.Context, request models.PaymentRequest) (models.Payment, error) {
	if s.err != nil {
		return models.Payment{}, s.err
	}
	payment := s.payment
	if payment.PaymentID == "" {
		payment = models.Payment{
			PaymentID:   "pay-1",
			UserID:      request.UserID,
			CourseID:    request.CourseID,
			AmountCents: request.AmountCents,
			Status:      "pending",
		}
	}
	return payment, nil
}

type handlerOptions struct {
	trustCfg config.Trust
	secrets  trust.SecretSource
	devMode  bool
	payments service.PaymentCreator
}

func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		trustCfg: config.Trust{
			ServiceID: "payment-service",
			APIKey:    "key-2",
			Secret:    "payment-secret",
		},
		secrets: trust.StaticSecretSource{
			"course-service":  "s3cr3t",
			"payment-service": "payment-secret",
		},
		payments: &stubPaymentCreator{},
	}
}

func newTestHandler(t *testing.T, opts handlerOptions) *Handler {
	t.Helper()

	auth, err := trust.NewAuthClient(opts.trustCfg, opts.secrets, logger.Nop())
	require.NoError(t, err)

	authorizer, err := authz.NewAuthorizer(logger.Nop())
	require.NoError(t, err)

	appCfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "opencampus",
		TokenDuration: time.Hour,
	}

	services := &service.Services{
		AuthService:    service.NewAuthService(newMemoryUserRepository(), appCfg, logger.Nop()),
		CourseService:  service.NewCourseService(opts.payments, logger.Nop()),
		PaymentService: service.NewPaymentService(logger.Nop()),
	}

	return NewHandler(services, auth, authorizer, opts.devMode, logger.Nop())
}

// newSigner builds the signing side of a peer service for service-mode
// requests against the protected routes.
func newSigner(t *testing.T, serviceID, apiKey, secret string) *trust.AuthClient {
	t.Helper()
	client, err := trust.NewAuthClient(config.Trust{
		ServiceID: serviceID,
		APIKey:    apiKey,
		Secret:    secret,
	}, trust.StaticSecretSource{}, logger.Nop())
	require.NoError(t, err)
	return client
}

func courseSigner(t *testing.T) *trust.AuthClient {
	t.Helper()
	return newSigner(t, "course-service", "key-1", "s3cr3t")
}

// mergedSecrets extends a static secret source with one more provisioned peer.
func mergedSecrets(base trust.SecretSource, serviceID, secret string) trust.StaticSecretSource {
	merged := trust.StaticSecretSource{serviceID: secret}
	if static, ok := base.(trust.StaticSecretSource); ok {
		for id, s := range static {
			merged[id] = s
		}
	}
	return merged
}

func signedServiceRequest(t *testing.T, signer *trust.AuthClient, method, target string, body []byte) *http.Request {
	t.Helper()

	cred, err := signer.Sign(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	cred.SetHeaders(req.Header)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// registerAndLogin creates a user through the public routes and returns a
// bearer token for it.
func registerAndLogin(t *testing.T, router http.Handler, email string, role models.UserRole) string {
	t.Helper()

	body, err := json.Marshal(models.User{
		Email:    email,
		Password: "password-123",
		Name:     "Test User",
		Role:     role,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	authHeader := rec.Header().Get("Authorization")
	require.NotEmpty(t, authHeader)
	return authHeader
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}
