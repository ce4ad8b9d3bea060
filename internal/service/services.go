package service

import (
	"github.com/opencampus/platform/internal/config"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/store"
)

type Services struct {
	AuthService    AuthService
	CourseService  CourseService
	PaymentService PaymentService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, payments PaymentCreator, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CourseService:  NewCourseService(payments, logger),
		PaymentService: NewPaymentService(logger),
	}
}
