package handlers

import (
	"net/http"
	"time"

	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/http/respond"
)

// StatusHandler reports liveness and uptime.
type StatusHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewStatusHandler creates a status endpoint handler.
func NewStatusHandler(startedAt time.Time) *StatusHandler {
	return &StatusHandler{startedAt: startedAt, now: time.Now}
}

func (h *StatusHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/status", Policy: auth.Public(), Handler: h.handle},
	}
}

func (h *StatusHandler) handle(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	respond.JSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "Server is running",
		"uptime":    now.Sub(h.startedAt).Truncate(time.Second).String(),
		"timestamp": now.UTC().Format(time.RFC3339),
	})
}
