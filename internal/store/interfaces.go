package store

import (
	"context"

	"github.com/opencampus/platform/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type ServiceRegistry interface {
	RegisterService(ctx context.Context, service models.RegisteredService) (models.RegisteredService, error)
	FindServiceByID(ctx context.Context, serviceID string) (models.RegisteredService, error)
}
