package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
)

// createPayment is the internal payment-creation endpoint. It is reachable
// only through the protected route chain, so by the time it runs the caller
// is an authenticated principal holding a payments/write grant.
func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid JSON was passed", err)
		return
	}

	payment, err := h.services.PaymentService.CreatePayment(ctx, request)
	if err != nil {
		h.rejectWithError(w, r, "payment creation failed", err)
		return
	}

	log.Info().
		Str("payment_id", payment.PaymentID).
		Int64("user_id", payment.UserID).
		Str("course_id", payment.CourseID).
		Msg("payment created")

	_, _ = utils.WriteJSON(w, payment, http.StatusCreated)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.services.PaymentService.GetPayment(r.Context(), chi.URLParam(r, "paymentID"))
	if err != nil {
		h.rejectWithError(w, r, "payment lookup failed", err)
		return
	}

	_, _ = utils.WriteJSON(w, payment, http.StatusOK)
}
