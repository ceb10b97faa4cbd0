// Package config loads service settings from the environment.
// An optional .env file in the working directory is read first.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`

	// StaticDir points at a built single-page client; empty disables static serving.
	StaticDir          string        `env:"STATIC_DIR"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"min=1s"`

	LLM LLM
}

// LLM holds the text-generation provider settings.
type LLM struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"openai" validate:"oneof=openai gemini"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY" validate:"required_if=Provider openai"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" validate:"omitempty,url"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`

	GeminiAPIKey string `env:"GEMINI_API_KEY" validate:"required_if=Provider gemini"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	MaxTokens int           `env:"LLM_MAX_TOKENS" envDefault:"300" validate:"min=1,max=4096"`
	Timeout   time.Duration `env:"LLM_TIMEOUT" envDefault:"60s" validate:"min=1s,max=10m"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
