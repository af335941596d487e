package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/movies-be/internal/models"
	"github.com/hongminglow/movies-be/internal/storage"
)

const movieSelect = `
	SELECT m.id, m.title, m.year, d.id, d.name
	FROM movies m
	LEFT JOIN directors d ON m.director_id = d.id`

// ListMovies returns every movie ordered by id.
func (s *Store) ListMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := s.pool.Query(ctx, movieSelect+` ORDER BY m.id ASC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return movies, nil
}

// GetMovie fetches one movie with its director name.
func (s *Store) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	return scanMovie(s.pool.QueryRow(ctx, movieSelect+` WHERE m.id = $1`, id))
}

// CreateMovie inserts a movie and returns it joined with its director.
func (s *Store) CreateMovie(ctx context.Context, title string, directorID int64, year string) (models.Movie, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO movies (title, director_id, year) VALUES ($1, $2, $3) RETURNING id`,
		title, directorID, year,
	).Scan(&id)
	if err != nil {
		return models.Movie{}, classify(err)
	}
	return s.GetMovie(ctx, id)
}

// UpdateMovie replaces a movie's fields.
func (s *Store) UpdateMovie(ctx context.Context, id int64, title string, directorID int64, year string) (models.Movie, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE movies SET title = $1, director_id = $2, year = $3 WHERE id = $4`,
		title, directorID, year, id,
	)
	if err != nil {
		return models.Movie{}, classify(err)
	}
	if tag.RowsAffected() == 0 {
		return models.Movie{}, storage.ErrNotFound
	}
	return s.GetMovie(ctx, id)
}

// DeleteMovie removes a movie.
func (s *Store) DeleteMovie(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListDirectors returns every director ordered by id.
func (s *Store) ListDirectors(ctx context.Context) ([]models.Director, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, birthyear FROM directors ORDER BY id ASC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	directors := []models.Director{}
	for rows.Next() {
		director, err := scanDirector(rows)
		if err != nil {
			return nil, err
		}
		directors = append(directors, director)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return directors, nil
}

// GetDirector fetches one director.
func (s *Store) GetDirector(ctx context.Context, id int64) (models.Director, error) {
	return scanDirector(s.pool.QueryRow(ctx, `SELECT id, name, birthyear FROM directors WHERE id = $1`, id))
}

// CreateDirector inserts a director.
func (s *Store) CreateDirector(ctx context.Context, name string, birthYear *string) (models.Director, error) {
	return scanDirector(s.pool.QueryRow(ctx,
		`INSERT INTO directors (name, birthyear) VALUES ($1, $2) RETURNING id, name, birthyear`,
		name, birthYear,
	))
}

// UpdateDirector replaces a director's fields.
func (s *Store) UpdateDirector(ctx context.Context, id int64, name string, birthYear *string) (models.Director, error) {
	return scanDirector(s.pool.QueryRow(ctx,
		`UPDATE directors SET name = $1, birthyear = $2 WHERE id = $3 RETURNING id, name, birthyear`,
		name, birthYear, id,
	))
}

// DeleteDirector removes a director; its movies keep existing without one.
func (s *Store) DeleteDirector(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanMovie(row pgx.Row) (models.Movie, error) {
	var movie models.Movie
	if err := row.Scan(&movie.ID, &movie.Title, &movie.Year, &movie.DirectorID, &movie.DirectorName); err != nil {
		return models.Movie{}, classify(err)
	}
	return movie, nil
}

func scanDirector(row pgx.Row) (models.Director, error) {
	var director models.Director
	if err := row.Scan(&director.ID, &director.Name, &director.BirthYear); err != nil {
		return models.Director{}, classify(err)
	}
	return director, nil
}
