package http

import (
	"net/http"

	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Service: string(h.auth.ServiceID()),
	}, http.StatusOK)
}
