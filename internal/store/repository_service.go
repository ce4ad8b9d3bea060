package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/models"
)

// serviceRegistry is the PostgreSQL-backed implementation of [ServiceRegistry].
// It stores the credentials of every backend service trusted by this node:
// the service identifier, its API key and the shared signing secret.
type serviceRegistry struct {
	logger *logger.Logger
	db     *DB
}

// NewServiceRegistry constructs a [ServiceRegistry] backed by the provided
// database connection and logger.
func NewServiceRegistry(db *DB, logger *logger.Logger) ServiceRegistry {
	logger.Debug().Msg("creating service registry")
	return &serviceRegistry{
		db:     db,
		logger: logger,
	}
}

// RegisterService persists the credentials of a peer service and returns the
// stored record with server-assigned fields (CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrServiceAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *serviceRegistry) RegisterService(ctx context.Context, service models.RegisteredService) (models.RegisteredService, error) {
	log := logger.FromContext(ctx)

	query, args, err := registerServiceQuery(service)
	if err != nil {
		log.Err(err).Str("func", "*serviceRegistry.RegisterService").Msg("error building insert query")
		return models.RegisteredService{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var stored models.RegisteredService
	if err := row.Scan(&stored.ServiceID, &stored.APIKey, &stored.Secret, &stored.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.RegisteredService{}, ErrServiceAlreadyRegistered
		}
		log.Err(err).Str("func", "*serviceRegistry.RegisterService").Msg("error: scanning error")
		return models.RegisteredService{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return stored, nil
}

// FindServiceByID retrieves the registered credentials for serviceID.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrServiceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *serviceRegistry) FindServiceByID(ctx context.Context, serviceID string) (models.RegisteredService, error) {
	log := logger.FromContext(ctx)

	query, args, err := findServiceByIDQuery(serviceID)
	if err != nil {
		log.Err(err).Str("func", "*serviceRegistry.FindServiceByID").Msg("error building select query")
		return models.RegisteredService{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.RegisteredService
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.ServiceID, &found.APIKey, &found.Secret, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RegisteredService{}, ErrServiceNotFound
		}
		log.Err(err).Str("func", "*serviceRegistry.FindServiceByID").Msg("error: scanning error")
		return models.RegisteredService{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
