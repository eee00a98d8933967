package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
)

// HealthHandler reports process liveness
type HealthHandler struct {
	environment  string
	timeProvider coreport.TimeProvider
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(environment string, timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{
		environment:  environment,
		timeProvider: timeProvider,
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   h.timeProvider.Now().UTC(),
		"environment": h.environment,
	})
}
