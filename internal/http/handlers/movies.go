package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/http/respond"
	"github.com/hongminglow/movies-be/internal/models"
	"github.com/hongminglow/movies-be/internal/models/dto"
	"github.com/hongminglow/movies-be/internal/storage"
)

// MovieHandler serves the movie catalog. Reads and creates need a token;
// updates and deletes need the admin role.
type MovieHandler struct {
	store storage.MovieStore
}

func NewMovieHandler(store storage.MovieStore) *MovieHandler {
	return &MovieHandler{store: store}
}

func (h *MovieHandler) Routes() []Route {
	admin := auth.RequireRole(models.RoleAdmin)
	return []Route{
		{Method: http.MethodGet, Pattern: "/movies", Policy: auth.Authenticated(), Handler: h.list},
		{Method: http.MethodGet, Pattern: "/movies/{id}", Policy: auth.Authenticated(), Handler: h.get},
		{Method: http.MethodPost, Pattern: "/movies", Policy: auth.Authenticated(), Handler: h.create},
		{Method: http.MethodPut, Pattern: "/movies/{id}", Policy: admin, Handler: h.update},
		{Method: http.MethodDelete, Pattern: "/movies/{id}", Policy: admin, Handler: h.delete},
	}
}

func (h *MovieHandler) list(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.ListMovies(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	movie, err := h.store.GetMovie(r.Context(), id)
	if err != nil {
		respond.Error(w, r, movieError(err))
		return
	}
	respond.JSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMovie(w, r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	movie, err := h.store.CreateMovie(r.Context(), req.Title, req.DirectorID, req.Year)
	if err != nil {
		respond.Error(w, r, movieError(err))
		return
	}
	respond.JSON(w, http.StatusCreated, movie)
}

func (h *MovieHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	req, err := decodeMovie(w, r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	movie, err := h.store.UpdateMovie(r.Context(), id, req.Title, req.DirectorID, req.Year)
	if err != nil {
		respond.Error(w, r, movieError(err))
		return
	}
	respond.JSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := h.store.DeleteMovie(r.Context(), id); err != nil {
		respond.Error(w, r, movieError(err))
		return
	}
	respond.NoContent(w)
}

func decodeMovie(w http.ResponseWriter, r *http.Request) (dto.MovieRequest, error) {
	var req dto.MovieRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return req, err
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Year = strings.TrimSpace(req.Year)
	if req.Title == "" || req.DirectorID <= 0 || req.Year == "" {
		return req, apperr.Validation("title, director_id, and year are required")
	}
	return req, nil
}

func movieError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFound("movie")
	case errors.Is(err, storage.ErrDirectorNotFound):
		return apperr.Validation("director_id does not reference an existing director")
	default:
		return apperr.Internal(err)
	}
}
