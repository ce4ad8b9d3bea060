package models

import "time"

// Course is a course catalog entry owned by an instructor.
type Course struct {
	// CourseID is the unique course identifier.
	CourseID string `json:"course_id"`

	// Title is the human-readable course title.
	Title string `json:"title"`

	// OwnerID is the user ID of the instructor who owns the course.
	// Ownership gates instructor-level write access.
	OwnerID int64 `json:"owner_id"`

	// PriceCents is the course price in the platform's minor currency unit.
	PriceCents int64 `json:"price_cents"`

	// CreatedAt is the catalog entry creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Payment is a payment intent created through the payment service.
type Payment struct {
	// PaymentID is the unique payment identifier.
	PaymentID string `json:"payment_id"`

	// UserID is the paying user.
	UserID int64 `json:"user_id"`

	// CourseID is the course being purchased.
	CourseID string `json:"course_id"`

	// AmountCents is the charged amount in minor currency units.
	AmountCents int64 `json:"amount_cents"`

	// Status is the payment lifecycle state ("pending", "confirmed").
	Status string `json:"status"`

	// CreatedAt is the intent creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// PaymentRequest is the body of an internal payment-creation call from the
// course service to the payment service.
type PaymentRequest struct {
	// UserID is the paying user.
	UserID int64 `json:"user_id"`

	// CourseID is the course being purchased.
	CourseID string `json:"course_id"`

	// AmountCents is the amount to charge in minor currency units.
	AmountCents int64 `json:"amount_cents"`

	// IdempotencyKey deduplicates retried payment creations independently of
	// the request-signing scheme; replaying the same key returns the
	// original payment.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}
