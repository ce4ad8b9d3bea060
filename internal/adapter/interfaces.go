package adapter

import (
	"context"

	"github.com/opencampus/platform/models"
)

// PaymentAdapter is the outbound client for the payment service's internal
// API. Every call is signed with the caller's service credential.
type PaymentAdapter interface {
	CreatePayment(ctx context.Context, request models.PaymentRequest) (models.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (models.Payment, error)
}
