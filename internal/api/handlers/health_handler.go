package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	apiKeyConfigured bool
}

func NewHealthHandler(apiKeyConfigured bool) *HealthHandler {
	return &HealthHandler{apiKeyConfigured: apiKeyConfigured}
}

type HealthResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	APIKeyConfigured bool   `json:"apiKeyConfigured"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:           "ok",
		Message:          "WellMind AI backend server is running",
		APIKeyConfigured: h.apiKeyConfigured,
	})
}
