package http

import (
	"github.com/opencampus/platform/internal/authz"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/service"
	"github.com/opencampus/platform/internal/trust"
)

type Handler struct {
	services   *service.Services
	auth       *trust.AuthClient
	authorizer *authz.Authorizer

	// devMode controls whether rejection responses carry the underlying
	// error string. Always false in production.
	devMode bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, auth *trust.AuthClient, authorizer *authz.Authorizer, devMode bool, logger *logger.Logger) *Handler {
	logger.Info().Bool("dev_mode", devMode).Msg("http handler created")
	return &Handler{
		services:   services,
		auth:       auth,
		authorizer: authorizer,
		devMode:    devMode,
		logger:     logger,
	}
}
