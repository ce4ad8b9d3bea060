package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/models"
)

// paymentService is the concrete implementation of PaymentService.
//
// Payment intents are held in memory and guarded by a mutex. An
// idempotency-key index makes retried creations return the original
// intent instead of charging again.
type paymentService struct {
	mu               sync.Mutex
	payments         map[string]models.Payment
	byIdempotencyKey map[string]string

	logger *logger.Logger
}

// NewPaymentService constructs an empty in-memory PaymentService.
func NewPaymentService(logger *logger.Logger) PaymentService {
	return &paymentService{
		payments:         make(map[string]models.Payment),
		byIdempotencyKey: make(map[string]string),
		logger:           logger,
	}
}

// CreatePayment records a new payment intent in the "pending" state.
//
// When the request carries an idempotency key already seen, the original
// payment is returned unchanged and nothing new is created.
func (p *paymentService) CreatePayment(ctx context.Context, request models.PaymentRequest) (models.Payment, error) {
	log := logger.FromContext(ctx)

	if request.UserID == 0 || request.CourseID == "" || request.AmountCents < 0 {
		log.Error().
			Int64("user_id", request.UserID).
			Str("course_id", request.CourseID).
			Msg("invalid payment request provided")
		return models.Payment{}, ErrInvalidDataProvided
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if request.IdempotencyKey != "" {
		if paymentID, ok := p.byIdempotencyKey[request.IdempotencyKey]; ok {
			log.Info().
				Str("payment_id", paymentID).
				Str("idempotency_key", request.IdempotencyKey).
				Msg("duplicate payment creation, returning original")
			return p.payments[paymentID], nil
		}
	}

	payment := models.Payment{
		PaymentID:   uuid.NewString(),
		UserID:      request.UserID,
		CourseID:    request.CourseID,
		AmountCents: request.AmountCents,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}

	p.payments[payment.PaymentID] = payment
	if request.IdempotencyKey != "" {
		p.byIdempotencyKey[request.IdempotencyKey] = payment.PaymentID
	}

	log.Info().
		Str("payment_id", payment.PaymentID).
		Int64("user_id", payment.UserID).
		Str("course_id", payment.CourseID).
		Msg("payment intent created")

	return payment, nil
}

// GetPayment returns the payment with the given ID, or ErrPaymentNotFound.
func (p *paymentService) GetPayment(ctx context.Context, paymentID string) (models.Payment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	payment, ok := p.payments[paymentID]
	if !ok {
		return models.Payment{}, ErrPaymentNotFound
	}

	return payment, nil
}
