package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opencampus/platform/internal/config"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/trust"
	"github.com/opencampus/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseAuthClient(t *testing.T) *trust.AuthClient {
	t.Helper()
	client, err := trust.NewAuthClient(config.Trust{
		ServiceID: "course-service",
		APIKey:    "key-1",
		Secret:    "s3cr3t",
	}, trust.StaticSecretSource{"course-service": "s3cr3t"}, logger.Nop())
	require.NoError(t, err)
	return client
}

func newPaymentVerifier(t *testing.T) *trust.AuthClient {
	t.Helper()
	client, err := trust.NewAuthClient(config.Trust{
		ServiceID: "payment-service",
		APIKey:    "key-2",
		Secret:    "payment-secret",
	}, trust.StaticSecretSource{"course-service": "s3cr3t"}, logger.Nop())
	require.NoError(t, err)
	return client
}

func newTestAdapter(t *testing.T, baseURL string) PaymentAdapter {
	t.Helper()
	a, err := NewPaymentHTTPAdapter(config.Adapter{
		PaymentAddress: baseURL,
		RequestTimeout: 5 * time.Second,
	}, newCourseAuthClient(t), logger.Nop())
	require.NoError(t, err)
	return a
}

func TestCreatePayment_SignsVerifiableRequest(t *testing.T) {
	verifier := newPaymentVerifier(t)

	var gotRequest models.PaymentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		identity, err := verifier.VerifyIncoming(r.Context(), r.Header, body)
		require.NoError(t, err, "outbound request must carry a verifiable credential")
		assert.Equal(t, models.CourseService, identity.ServiceID)

		require.NoError(t, json.Unmarshal(body, &gotRequest))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Payment{
			PaymentID:   "pay-1",
			UserID:      gotRequest.UserID,
			CourseID:    gotRequest.CourseID,
			AmountCents: gotRequest.AmountCents,
			Status:      "pending",
		})
	}))
	defer server.Close()

	a := newTestAdapter(t, server.URL)

	payment, err := a.CreatePayment(context.Background(), models.PaymentRequest{
		UserID:         42,
		CourseID:       "go-101",
		AmountCents:    9900,
		IdempotencyKey: "purchase:42:go-101",
	})
	require.NoError(t, err)

	assert.Equal(t, "pay-1", payment.PaymentID)
	assert.Equal(t, "pending", payment.Status)
	assert.Equal(t, "purchase:42:go-101", gotRequest.IdempotencyKey)
}

func TestGetPayment_SignsEmptyBody(t *testing.T) {
	verifier := newPaymentVerifier(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		_, err = verifier.VerifyIncoming(r.Context(), r.Header, body)
		require.NoError(t, err, "empty-body request must verify against the canonical empty object")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Payment{PaymentID: "pay-1", Status: "pending"})
	}))
	defer server.Close()

	a := newTestAdapter(t, server.URL)

	payment, err := a.GetPayment(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.PaymentID)
}

func TestCreatePayment_MapsErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rejected", tt.status)
			}))
			defer server.Close()

			a := newTestAdapter(t, server.URL)

			_, err := a.CreatePayment(context.Background(), models.PaymentRequest{
				UserID:      42,
				CourseID:    "go-101",
				AmountCents: 9900,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewPaymentHTTPAdapter_InvalidAddress(t *testing.T) {
	_, err := NewPaymentHTTPAdapter(config.Adapter{PaymentAddress: "   "}, newCourseAuthClient(t), logger.Nop())
	require.Error(t, err)

	a, err := NewPaymentHTTPAdapter(config.Adapter{PaymentAddress: "payment-api:8081"}, newCourseAuthClient(t), logger.Nop())
	require.NoError(t, err, "scheme-less host:port addresses are normalised")
	require.NotNil(t, a)
}
