package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wellmind-ai/wellmind-backend/config"
	"github.com/wellmind-ai/wellmind-backend/internal/api/handlers"
	"github.com/wellmind-ai/wellmind-backend/internal/api/middleware"
	"github.com/wellmind-ai/wellmind-backend/internal/api/routes"
	"github.com/wellmind-ai/wellmind-backend/internal/cache"
	"github.com/wellmind-ai/wellmind-backend/internal/logger"
	"github.com/wellmind-ai/wellmind-backend/internal/providers/llm"
	mongorepo "github.com/wellmind-ai/wellmind-backend/internal/repositories/mongo"
	"github.com/wellmind-ai/wellmind-backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	// Mongo
	client, err := config.InitMongo(cfg)
	if err != nil {
		l.Fatalf("MongoDB init error: %v", err)
	}
	db := client.Database(cfg.MongoDB)
	if err := config.EnsureMongoIndexes(db); err != nil {
		l.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Redis (optional)
	var c cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := config.InitRedis(cfg)
		if err != nil {
			l.Fatalf("Redis init error: %v", err)
		}
		c = cache.NewRedisCache(rdb)
		l.Info("Redis connected")
	}

	// OpenAI. The server boots without a credential; chat requests report
	// a configuration error until one is set.
	var provider llm.Provider
	if cfg.APIKeyConfigured() {
		provider = llm.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		l.Info("OpenAI API key configured")
	} else {
		l.Warn("OpenAI API key not configured; chat requests will fail")
	}

	// Repositories and services
	logRepo := mongorepo.NewLogRepo(db)
	chatLogRepo := mongorepo.NewChatLogRepo(db)

	logSvc := services.NewLogService(logRepo, c, l)
	contextSvc := services.NewWellnessContextService(logRepo, c, cfg.ContextCacheTTL, l)
	chatSvc := services.NewChatService(provider, contextSvc, chatLogRepo, l)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Health:     handlers.NewHealthHandler(cfg.APIKeyConfigured()),
		Chat:       handlers.NewChatHandler(chatSvc),
		Logs:       handlers.NewLogHandler(logSvc),
		DemoUserID: cfg.DemoUserID,
	})

	l.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		l.Fatalf("server error: %v", err)
	}
}
