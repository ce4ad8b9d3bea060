package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/service"
	"github.com/opencampus/platform/internal/store"
	"github.com/opencampus/platform/internal/utils"
	"github.com/opencampus/platform/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid JSON was passed", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.writeError(w, r, http.StatusBadRequest, "invalid data provided", err)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			h.writeError(w, r, http.StatusConflict, "email already exists", err)
			return
		default:
			h.writeError(w, r, http.StatusInternalServerError, "user registration failed", err)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "creation of token failed", err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("role", string(registeredUser.Role)).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid JSON was passed", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.writeError(w, r, http.StatusBadRequest, "invalid data provided", err)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			// One message for both, so login probing cannot tell accounts apart.
			h.writeError(w, r, http.StatusUnauthorized, "invalid email/password", err)
			return
		default:
			h.writeError(w, r, http.StatusInternalServerError, "user login failed", err)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "creation of token failed", err)
		return
	}

	log.Info().Int64("user_id", foundUser.UserID).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, foundUser, http.StatusOK)
}
