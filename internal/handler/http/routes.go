package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/opencampus/platform/internal/authz"
	"github.com/opencampus/platform/internal/service"
)

// baseRouter wires the middleware every route shares: panic recovery,
// trace-ID propagation, and access logging.
func (h *Handler) baseRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	return router
}

// CourseRoutes builds the router for the course service: public
// registration/login plus the protected catalog and purchase routes.
func (h *Handler) CourseRoutes() *chi.Mux {
	router := h.baseRouter()

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Method(http.MethodGet, "/api/courses",
		h.Protected(authz.ResourceCourses, authz.ActionRead, nil, h.listCourses))
	router.Method(http.MethodGet, "/api/courses/{courseID}",
		h.Protected(authz.ResourceCourses, authz.ActionRead, nil, h.getCourse))
	router.Method(http.MethodPost, "/api/courses",
		h.Protected(authz.ResourceCourses, authz.ActionWrite, nil, h.createCourse))
	router.Method(http.MethodPut, "/api/courses/{courseID}",
		h.Protected(authz.ResourceCourses, authz.ActionWrite, h.courseOwner, h.updateCourse))
	router.Method(http.MethodPost, "/api/courses/{courseID}/purchase",
		h.Protected(authz.ResourceCourses, authz.ActionRead, nil, h.purchaseCourse))

	return router
}

// PaymentRoutes builds the router for the payment service's internal API.
// Every payment route requires a verified caller with a payments grant;
// in practice that is a signed service credential.
func (h *Handler) PaymentRoutes() *chi.Mux {
	router := h.baseRouter()

	router.Get("/health", h.health)

	router.Method(http.MethodPost, "/internal/payments",
		h.Protected(authz.ResourcePayments, authz.ActionWrite, nil, h.createPayment))
	router.Method(http.MethodGet, "/internal/payments/{paymentID}",
		h.Protected(authz.ResourcePayments, authz.ActionRead, nil, h.getPayment))

	return router
}

// courseOwner resolves the owning instructor of the course a write targets.
// A missing course yields an unknown owner; the handler produces the 404.
func (h *Handler) courseOwner(r *http.Request) (authz.OwnerInfo, error) {
	course, err := h.services.CourseService.GetCourse(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return authz.OwnerInfo{}, nil
		}
		return authz.OwnerInfo{}, err
	}

	return authz.OwnerInfo{Known: true, UserID: course.OwnerID}, nil
}
