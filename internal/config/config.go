package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	Diffbot DiffbotConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
}

// DiffbotConfig holds the remote endpoint settings. APIToken is required
// at startup and must never be logged.
type DiffbotConfig struct {
	APIToken string        `envconfig:"DIFFBOT_API_TOKEN" required:"true"`
	BaseURL  string        `envconfig:"DIFFBOT_BASE_URL" default:"https://llm.diffbot.com/rag/v1"`
	Model    string        `envconfig:"DIFFBOT_MODEL" default:"diffbot-small-xl"`
	Timeout  time.Duration `envconfig:"DIFFBOT_TIMEOUT" default:"60s"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	slog.Info("configuration loaded successfully", "baseURL", cfg.Diffbot.BaseURL, "model", cfg.Diffbot.Model)
	return &cfg, nil
}
