package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/opencampus/platform/models"
)

// psql builds parameterised queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func createUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("email", "password_hash", "name", "role").
		Values(user.Email, user.PasswordHash, user.Name, user.Role).
		Suffix("RETURNING user_id, email, password_hash, name, role, created_at").
		ToSql()
}

func findUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select("user_id", "email", "password_hash", "name", "role", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func registerServiceQuery(service models.RegisteredService) (string, []any, error) {
	return psql.Insert(service.TableName()).
		Columns("service_id", "api_key", "secret").
		Values(service.ServiceID, service.APIKey, service.Secret).
		Suffix("RETURNING service_id, api_key, secret, created_at").
		ToSql()
}

func findServiceByIDQuery(serviceID string) (string, []any, error) {
	return psql.Select("service_id", "api_key", "secret", "created_at").
		From(models.RegisteredService{}.TableName()).
		Where(sq.Eq{"service_id": serviceID}).
		ToSql()
}
