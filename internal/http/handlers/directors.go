package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/http/respond"
	"github.com/hongminglow/movies-be/internal/models/dto"
	"github.com/hongminglow/movies-be/internal/storage"
)

// DirectorHandler serves directors: public reads, authenticated writes.
type DirectorHandler struct {
	store storage.DirectorStore
}

func NewDirectorHandler(store storage.DirectorStore) *DirectorHandler {
	return &DirectorHandler{store: store}
}

func (h *DirectorHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/directors", Policy: auth.Public(), Handler: h.list},
		{Method: http.MethodGet, Pattern: "/directors/{id}", Policy: auth.Public(), Handler: h.get},
		{Method: http.MethodPost, Pattern: "/directors", Policy: auth.Authenticated(), Handler: h.create},
		{Method: http.MethodPut, Pattern: "/directors/{id}", Policy: auth.Authenticated(), Handler: h.update},
		{Method: http.MethodDelete, Pattern: "/directors/{id}", Policy: auth.Authenticated(), Handler: h.delete},
	}
}

func (h *DirectorHandler) list(w http.ResponseWriter, r *http.Request) {
	directors, err := h.store.ListDirectors(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, directors)
}

func (h *DirectorHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	director, err := h.store.GetDirector(r.Context(), id)
	if err != nil {
		respond.Error(w, r, directorError(err))
		return
	}
	respond.JSON(w, http.StatusOK, director)
}

func (h *DirectorHandler) create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeDirector(w, r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	director, err := h.store.CreateDirector(r.Context(), req.Name, req.BirthYear)
	if err != nil {
		respond.Error(w, r, directorError(err))
		return
	}
	respond.JSON(w, http.StatusCreated, director)
}

func (h *DirectorHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	req, err := decodeDirector(w, r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	director, err := h.store.UpdateDirector(r.Context(), id, req.Name, req.BirthYear)
	if err != nil {
		respond.Error(w, r, directorError(err))
		return
	}
	respond.JSON(w, http.StatusOK, director)
}

func (h *DirectorHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := h.store.DeleteDirector(r.Context(), id); err != nil {
		respond.Error(w, r, directorError(err))
		return
	}
	respond.JSON(w, http.StatusOK, dto.DeletedResponse{DeletedID: id})
}

func decodeDirector(w http.ResponseWriter, r *http.Request) (dto.DirectorRequest, error) {
	var req dto.DirectorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return req, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, apperr.Validation("name is required")
	}
	if req.BirthYear != nil && strings.TrimSpace(*req.BirthYear) == "" {
		req.BirthYear = nil
	}
	return req, nil
}

func directorError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound("director")
	}
	return apperr.Internal(err)
}
