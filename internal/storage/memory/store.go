// Package memory is a process-local storage.Store used for tests and local
// development without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hongminglow/movies-be/internal/models"
	"github.com/hongminglow/movies-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps every record behind a single mutex, which also makes
// CreateUser's check-and-insert atomic.
type Store struct {
	mu sync.RWMutex

	users      map[int64]models.User
	byUsername map[string]int64
	movies     map[int64]movieRow
	directors  map[int64]models.Director

	nextUserID     int64
	nextMovieID    int64
	nextDirectorID int64
}

type movieRow struct {
	id         int64
	title      string
	year       string
	directorID *int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:      make(map[int64]models.User),
		byUsername: make(map[string]int64),
		movies:     make(map[int64]movieRow),
		directors:  make(map[int64]models.Director),
	}
}

// Close is a no-op.
func (s *Store) Close() {}

func (s *Store) CreateUser(_ context.Context, username, passwordHash string, role models.Role) (models.User, error) {
	username = storage.NormalizeUsername(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[username]; taken {
		return models.User{}, storage.ErrDuplicateUsername
	}
	s.nextUserID++
	user := models.User{
		ID:           s.nextUserID,
		Username:     username,
		Role:         role.OrDefault(),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[user.ID] = user
	s.byUsername[username] = user.ID
	return user, nil
}

func (s *Store) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[storage.NormalizeUsername(username)]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return s.users[id], nil
}

func (s *Store) FindByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Store) ListMovies(_ context.Context) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := make([]models.Movie, 0, len(s.movies))
	for _, row := range s.movies {
		movies = append(movies, s.joinMovie(row))
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (s *Store) GetMovie(_ context.Context, id int64) (models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.movies[id]
	if !ok {
		return models.Movie{}, storage.ErrNotFound
	}
	return s.joinMovie(row), nil
}

func (s *Store) CreateMovie(_ context.Context, title string, directorID int64, year string) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directors[directorID]; !ok {
		return models.Movie{}, storage.ErrDirectorNotFound
	}
	s.nextMovieID++
	row := movieRow{id: s.nextMovieID, title: title, year: year, directorID: &directorID}
	s.movies[row.id] = row
	return s.joinMovie(row), nil
}

func (s *Store) UpdateMovie(_ context.Context, id int64, title string, directorID int64, year string) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[id]; !ok {
		return models.Movie{}, storage.ErrNotFound
	}
	if _, ok := s.directors[directorID]; !ok {
		return models.Movie{}, storage.ErrDirectorNotFound
	}
	row := movieRow{id: id, title: title, year: year, directorID: &directorID}
	s.movies[id] = row
	return s.joinMovie(row), nil
}

func (s *Store) DeleteMovie(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.movies, id)
	return nil
}

func (s *Store) ListDirectors(_ context.Context) ([]models.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	directors := make([]models.Director, 0, len(s.directors))
	for _, d := range s.directors {
		directors = append(directors, d)
	}
	sort.Slice(directors, func(i, j int) bool { return directors[i].ID < directors[j].ID })
	return directors, nil
}

func (s *Store) GetDirector(_ context.Context, id int64) (models.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.directors[id]
	if !ok {
		return models.Director{}, storage.ErrNotFound
	}
	return d, nil
}

func (s *Store) CreateDirector(_ context.Context, name string, birthYear *string) (models.Director, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDirectorID++
	d := models.Director{ID: s.nextDirectorID, Name: name, BirthYear: birthYear}
	s.directors[d.ID] = d
	return d, nil
}

func (s *Store) UpdateDirector(_ context.Context, id int64, name string, birthYear *string) (models.Director, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directors[id]; !ok {
		return models.Director{}, storage.ErrNotFound
	}
	d := models.Director{ID: id, Name: name, BirthYear: birthYear}
	s.directors[id] = d
	return d, nil
}

// DeleteDirector mirrors ON DELETE SET NULL on the movies table.
func (s *Store) DeleteDirector(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directors[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.directors, id)
	for movieID, row := range s.movies {
		if row.directorID != nil && *row.directorID == id {
			row.directorID = nil
			s.movies[movieID] = row
		}
	}
	return nil
}

// joinMovie must be called with s.mu held.
func (s *Store) joinMovie(row movieRow) models.Movie {
	movie := models.Movie{ID: row.id, Title: row.title, Year: row.year}
	if row.directorID == nil {
		return movie
	}
	id := *row.directorID
	movie.DirectorID = &id
	if d, ok := s.directors[id]; ok {
		name := d.Name
		movie.DirectorName = &name
	}
	return movie
}
