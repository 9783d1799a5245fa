package http

import (
	"net/http"
	"time"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/respond"
)

// HealthReporter is the slice of the health checker the handler needs.
type HealthReporter interface {
	IsHealthy() bool
	Components() map[string]bool
}

type HealthHandler struct {
	reporter HealthReporter
}

func NewHealthHandler(reporter HealthReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// Check GET /healthz
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	code := http.StatusOK
	if h.reporter == nil || !h.reporter.IsHealthy() {
		status = "DOWN"
		code = http.StatusInternalServerError
	}
	var components map[string]bool
	if h.reporter != nil {
		components = h.reporter.Components()
	}
	respond.WriteJSON(w, code, map[string]interface{}{
		"status":     status,
		"components": components,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
