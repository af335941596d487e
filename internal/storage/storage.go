package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/hongminglow/movies-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername indicates the username is already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrDirectorNotFound indicates a movie references a director that does not exist.
var ErrDirectorNotFound = errors.New("director does not exist")

// ErrStorage wraps any other failure of the underlying storage.
var ErrStorage = errors.New("storage failure")

// UserStore captures credential persistence. Create must check-and-insert atomically.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string, role models.Role) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
}

// MovieStore persists movies.
type MovieStore interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (models.Movie, error)
	CreateMovie(ctx context.Context, title string, directorID int64, year string) (models.Movie, error)
	UpdateMovie(ctx context.Context, id int64, title string, directorID int64, year string) (models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// DirectorStore persists directors.
type DirectorStore interface {
	ListDirectors(ctx context.Context) ([]models.Director, error)
	GetDirector(ctx context.Context, id int64) (models.Director, error)
	CreateDirector(ctx context.Context, name string, birthYear *string) (models.Director, error)
	UpdateDirector(ctx context.Context, id int64, name string, birthYear *string) (models.Director, error)
	DeleteDirector(ctx context.Context, id int64) error
}

// Store bundles every persistence concern the server needs.
type Store interface {
	UserStore
	MovieStore
	DirectorStore
	Close()
}

// NormalizeUsername is applied to usernames before every uniqueness check and lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
