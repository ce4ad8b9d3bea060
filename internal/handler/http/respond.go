package http

import (
	"net/http"

	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
)

// writeError emits the uniform rejection shape shared by all platform
// services and logs the rejection exactly once. The underlying error is
// included in the response only in development mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string, err error) {
	log := logger.FromRequest(r)
	log.Warn().
		Err(err).
		Int("status", statusCode).
		Str("uri", r.RequestURI).
		Msg(message)

	response := models.ErrorResponse{
		Status:     "error",
		StatusCode: statusCode,
		Message:    message,
	}
	if h.devMode && err != nil {
		response.Error = err.Error()
	}

	_, _ = utils.WriteJSON(w, response, statusCode)
}

// rejectWithError maps err through the error/status table and writes the
// uniform rejection.
func (h *Handler) rejectWithError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.writeError(w, r, statusFromError(err), message, err)
}
