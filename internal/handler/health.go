package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/gym-console/pkg/response"
)

// Pinger is the minimal contract I need from the backend client to check readiness.
// I keep it local to the handler package to avoid coupling and simplify tests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	backend Pinger
}

func NewHealthHandler(backend Pinger) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	response.WriteData(c, http.StatusOK, gin.H{"status": "alive"})
}

// Readiness verifies the REST backend answers.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.backend.Ping(c.Request.Context()); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"status": "ready"})
}
