package handlers

import (
	"net/http"

	"github.com/bengobox/status-service/internal/status"
)

// RootMessage is the body served on the root health check.
const RootMessage = "API is running!"

// Root confirms the process is alive and serving.
func Root(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, RootMessage)
}

// StatusHandler serves the status payload.
type StatusHandler struct {
	now status.Clock
}

// NewStatusHandler creates a handler reading time from now, or the system
// clock when now is nil.
func NewStatusHandler(now status.Clock) *StatusHandler {
	if now == nil {
		now = status.SystemClock
	}
	return &StatusHandler{now: now}
}

// Status responds with the service state and the request arrival time.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, status.New(h.now()))
}
