package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Vovarama1992/review-reply/internal/config"
)

// New builds the client for the configured provider.
func New(ctx context.Context, cfg config.LLM, log *slog.Logger) (AI, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.MaxTokens, cfg.Timeout, log), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxTokens, cfg.Timeout, log)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
