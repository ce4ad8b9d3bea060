package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/trust"
	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		h.rejectWithError(w, r, "listing courses failed", err)
		return
	}

	_, _ = utils.WriteJSON(w, courses, http.StatusOK)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.services.CourseService.GetCourse(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		h.rejectWithError(w, r, "course lookup failed", err)
		return
	}

	_, _ = utils.WriteJSON(w, course, http.StatusOK)
}

// createCourse creates a catalog entry owned by the authenticated user.
// The owner always comes from the verified identity, never from the body.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, http.StatusInternalServerError, "no authenticated identity", trust.ErrUnauthenticated)
		return
	}

	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid JSON was passed", err)
		return
	}
	course.OwnerID = identity.UserID

	created, err := h.services.CourseService.CreateCourse(ctx, course)
	if err != nil {
		h.rejectWithError(w, r, "course creation failed", err)
		return
	}

	log.Info().Str("course_id", created.CourseID).Msg("course created")

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid JSON was passed", err)
		return
	}
	course.CourseID = chi.URLParam(r, "courseID")

	updated, err := h.services.CourseService.UpdateCourse(ctx, course)
	if err != nil {
		h.rejectWithError(w, r, "course update failed", err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

// purchaseCourse initiates a payment intent for the authenticated user via
// the payment service. The outbound call is signed with this service's own
// credential; the user's token never leaves this process.
func (h *Handler) purchaseCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, http.StatusInternalServerError, "no authenticated identity", trust.ErrUnauthenticated)
		return
	}
	if identity.IsService() {
		h.writeError(w, r, http.StatusForbidden, "purchases are user-only", trust.ErrForbidden)
		return
	}

	payment, err := h.services.CourseService.PurchaseCourse(ctx, identity.UserID, chi.URLParam(r, "courseID"))
	if err != nil {
		h.rejectWithError(w, r, "course purchase failed", err)
		return
	}

	log.Info().Str("payment_id", payment.PaymentID).Int64("user_id", identity.UserID).Msg("purchase initiated")

	_, _ = utils.WriteJSON(w, payment, http.StatusCreated)
}
