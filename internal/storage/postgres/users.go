package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/movies-be/internal/models"
	"github.com/hongminglow/movies-be/internal/storage"
)

const userColumns = `id, username, role, password_hash, created_at`

// CreateUser inserts a new user row. The username unique constraint is the
// arbiter for concurrent registrations.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string, role models.Role) (models.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query, storage.NormalizeUsername(username), passwordHash, string(role.OrDefault()))
	return scanUser(row)
}

// FindByUsername fetches a user by normalized username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	row := s.pool.QueryRow(ctx, query, storage.NormalizeUsername(username))
	return scanUser(row)
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	row := s.pool.QueryRow(ctx, query, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	var role string
	if err := row.Scan(&user.ID, &user.Username, &role, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, classify(err)
	}
	user.Role = models.Role(role)
	return user, nil
}
