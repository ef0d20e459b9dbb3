package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	aiEnabled func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	AIMode    string `json:"ai_mode"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(aiEnabled func() bool) *HealthController {
	return &HealthController{aiEnabled: aiEnabled}
}

// Check handles GET /health requests.
// It reports whether the AI delegate is configured; the service is healthy
// either way because the heuristic fallback always works.
func (h *HealthController) Check(c *gin.Context) {
	aiMode := "fallback"
	if h.aiEnabled != nil && h.aiEnabled() {
		aiMode = "delegate"
	}

	response := HealthResponse{
		Status:    "ok",
		AIMode:    aiMode,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
