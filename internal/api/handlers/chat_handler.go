package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
	"github.com/wellmind-ai/wellmind-backend/internal/services"
)

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	Message string `json:"message"`
	// IncludeContext asks the server to build the wellness context from
	// the user's recent logs.
	IncludeContext bool `json:"include_context"`
	// WellnessData lets a client supply pre-fetched logs instead; it takes
	// precedence over IncludeContext.
	WellnessData *models.WellnessData `json:"wellness_data"`
}

type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body counts as a missing message; the service
		// rejects it with the same validation error.
		req = ChatRequest{}
	}

	reply, err := h.svc.Send(c.Request.Context(), userID, req.Message, req.WellnessData, req.IncludeContext)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Success: true, Message: reply})
}
