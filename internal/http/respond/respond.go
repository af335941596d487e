package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/logging"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Error("respond: encode payload failed", slog.Any("error", err))
	}
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error resolves err to an AppError and writes its client-safe form. Server
// errors are logged with their cause; the cause never reaches the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.From(err)
	if ae.HTTPStatus >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("code", ae.Code),
			slog.Any("cause", ae.Cause),
		)
	}
	JSON(w, ae.HTTPStatus, ErrorBody{Error: ae.Message, Code: ae.Code})
}
