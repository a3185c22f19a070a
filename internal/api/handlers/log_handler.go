package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
	"github.com/wellmind-ai/wellmind-backend/internal/services"
	"github.com/wellmind-ai/wellmind-backend/internal/utils"
)

type LogHandler struct {
	svc services.LogService
}

func NewLogHandler(svc services.LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

type AppendLogResponse struct {
	Success bool             `json:"success"`
	ID      string           `json:"id"`
	Entry   *models.LogEntry `json:"entry"`
}

type ListLogsResponse struct {
	Success bool              `json:"success"`
	Logs    []models.LogEntry `json:"logs"`
}

func (h *LogHandler) Append(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category := models.Category(c.Param("category"))

	var in services.AppendInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeValidation, "LogHandler.Append", "invalid request body", err))
		return
	}

	entry, err := h.svc.Append(c.Request.Context(), category, userID, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AppendLogResponse{
		Success: true,
		ID:      entry.ID.Hex(),
		Entry:   entry,
	})
}

func (h *LogHandler) Recent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category := models.Category(c.Param("category"))

	count := int64(10)
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			writeError(c, utils.E(utils.CodeValidation, "LogHandler.Recent", "count must be a positive integer", err))
			return
		}
		count = n
	}

	logs, err := h.svc.Recent(c.Request.Context(), category, userID, count)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListLogsResponse{Success: true, Logs: logs})
}

func (h *LogHandler) ByRange(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category := models.Category(c.Param("category"))

	start, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		writeError(c, utils.E(utils.CodeValidation, "LogHandler.ByRange", "from must be an RFC3339 timestamp", err))
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		writeError(c, utils.E(utils.CodeValidation, "LogHandler.ByRange", "to must be an RFC3339 timestamp", err))
		return
	}

	logs, err := h.svc.ByRange(c.Request.Context(), category, userID, start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListLogsResponse{Success: true, Logs: logs})
}
