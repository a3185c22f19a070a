package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellmind-ai/wellmind-backend/internal/utils"
)

type APIError struct {
	Success bool       `json:"success"`
	Code    utils.Code `json:"code"`
	Error   string     `json:"error"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Success: false,
			Code:    ae.Code,
			Error:   utils.SafeMessage(err),
		})
		return
	}

	c.JSON(status, APIError{
		Success: false,
		Code:    utils.CodeInternal,
		Error:   http.StatusText(status),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeValidation, "Identity", "user identity is missing", nil))
	return "", false
}
