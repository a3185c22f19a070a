package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wellmind-ai/wellmind-backend/internal/api/handlers"
	"github.com/wellmind-ai/wellmind-backend/internal/api/middleware"
)

type Deps struct {
	Health *handlers.HealthHandler
	Chat   *handlers.ChatHandler
	Logs   *handlers.LogHandler

	// DemoUserID is the identity fallback when no X-User-Id header is sent.
	DemoUserID string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", d.Health.Health)

	api := r.Group("/api")
	api.Use(middleware.Identity(d.DemoUserID))

	api.POST("/chat", d.Chat.Chat)

	api.POST("/logs/:category", d.Logs.Append)
	api.GET("/logs/:category/recent", d.Logs.Recent)
	api.GET("/logs/:category/range", d.Logs.ByRange)
}
