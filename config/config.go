package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Port string `env:"PORT" envDefault:"8080"`

	// MongoDB
	MongoURI string `env:"MONGO_URI,required"`
	MongoDB  string `env:"MONGO_DB" envDefault:"wellmind"`

	// Redis (optional; context-summary cache is disabled when empty)
	RedisAddr string `env:"REDIS_ADDR"`

	// OpenAI. An empty key does not stop boot: the relay reports a
	// configuration error per request instead.
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// Identity fallback until real authentication lands.
	DemoUserID string `env:"DEMO_USER_ID" envDefault:"demo_user_1"`

	ContextCacheTTL time.Duration `env:"CONTEXT_CACHE_TTL" envDefault:"60s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.OpenAIKey = strings.TrimSpace(cfg.OpenAIKey)
	return cfg, nil
}

// APIKeyConfigured reports whether a usable OpenAI credential is present.
// Placeholder values from sample .env files count as absent.
func (c *Config) APIKeyConfigured() bool {
	return c.OpenAIKey != "" && c.OpenAIKey != "your-api-key-here"
}
