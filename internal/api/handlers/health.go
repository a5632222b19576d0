package handlers

import (
	"context"
	"net/http"
	"time"

	"football-data-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const readinessTimeout = 2 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler. db may be nil.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadinessResponse reports the state of each dependency
type ReadinessResponse struct {
	Status    string            `json:"status" example:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health returns a static liveness answer, independent of the store
// @Summary Health check
// @Description Report that the process is up
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now(),
	})
}

// Ready reports whether the store answers a ping
// @Summary Readiness check
// @Description Check that the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	resp := ReadinessResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready"},
	}
	statusCode := http.StatusOK

	if err := database.Ping(ctx, h.db); err != nil {
		resp.Status = "not ready"
		resp.Services["database"] = "not ready: " + err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, resp)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
