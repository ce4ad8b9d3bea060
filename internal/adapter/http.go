package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/opencampus/platform/internal/config"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/trust"
	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
)

type paymentHTTPAdapter struct {
	client *utils.HTTPClient
	auth   *trust.AuthClient

	logger *logger.Logger
}

// NewPaymentHTTPAdapter constructs an HTTP/REST implementation of
// [PaymentAdapter]. It normalises and validates the base URL from
// adapterCfg.PaymentAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout. Outbound requests are signed
// with auth's service credential.
//
// Returns an error if adapterCfg.PaymentAddress is empty or cannot be parsed
// as a valid URL.
func NewPaymentHTTPAdapter(adapterCfg config.Adapter, auth *trust.AuthClient, logger *logger.Logger) (PaymentAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.PaymentAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid payment service address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &paymentHTTPAdapter{client: client, auth: auth, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// signedRequest prepares a resty request carrying the service credential
// computed over body. The exact signed bytes are set as the request body so
// the receiver verifies what was actually sent.
func (h *paymentHTTPAdapter) signedRequest(ctx context.Context, body []byte) (*resty.Request, error) {
	cred, err := h.auth.Sign(body)
	if err != nil {
		return nil, fmt.Errorf("sign outbound request: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(models.HeaderServiceAPIKey, cred.APIKey).
		SetHeader(models.HeaderServiceID, cred.ServiceID).
		SetHeader(models.HeaderTimestamp, strconv.FormatInt(cred.Timestamp, 10)).
		SetHeader(models.HeaderSignature, cred.Signature)

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	return req, nil
}

// CreatePayment implements [PaymentAdapter]. It POSTs the signed payment
// request to POST /internal/payments and decodes the created intent.
func (h *paymentHTTPAdapter) CreatePayment(ctx context.Context, request models.PaymentRequest) (models.Payment, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return models.Payment{}, fmt.Errorf("encode payment request: %w", err)
	}

	req, err := h.signedRequest(ctx, body)
	if err != nil {
		return models.Payment{}, err
	}

	var payment models.Payment
	resp, err := req.
		SetResult(&payment).
		Post("/internal/payments")
	if err != nil {
		return models.Payment{}, fmt.Errorf("create payment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Payment{}, err
	}

	return payment, nil
}

// GetPayment implements [PaymentAdapter]. It GETs the signed lookup from
// GET /internal/payments/{paymentID}. The empty request body is signed as
// the canonical empty object.
func (h *paymentHTTPAdapter) GetPayment(ctx context.Context, paymentID string) (models.Payment, error) {
	req, err := h.signedRequest(ctx, nil)
	if err != nil {
		return models.Payment{}, err
	}

	var payment models.Payment
	resp, err := req.
		SetResult(&payment).
		Get("/internal/payments/" + url.PathEscape(paymentID))
	if err != nil {
		return models.Payment{}, fmt.Errorf("get payment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Payment{}, err
	}

	return payment, nil
}
