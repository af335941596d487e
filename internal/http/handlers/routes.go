package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/auth"
)

const maxBodyBytes = 1 << 20

// Route declares one endpoint together with its access policy.
type Route struct {
	Method      string
	Pattern     string
	Policy      auth.Policy
	RateLimited bool
	Handler     http.HandlerFunc
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid JSON payload")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("id must be a positive integer")
	}
	return id, nil
}
