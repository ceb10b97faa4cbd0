package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient generates replies with Google's Gemini API.
type GeminiClient struct {
	client    *genai.Client
	model     string
	maxTokens int32
	log       *slog.Logger
}

func NewGeminiClient(
	ctx context.Context,
	apiKey string,
	model string,
	maxTokens int,
	timeout time.Duration,
	log *slog.Logger,
) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    gc,
		model:     model,
		maxTokens: int32(maxTokens),
		log:       log.With("component", "gemini"),
	}, nil
}

func (c *GeminiClient) GetReply(
	ctx context.Context,
	systemPrompt string,
	userPrompt string,
) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		MaxOutputTokens:   c.maxTokens,
	}
	contents := []*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		c.log.ErrorContext(ctx, "generate content failed", "model", c.model, "error", err)
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return candidateText(resp), nil
}

// candidateText joins the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var b strings.Builder
	for _, p := range content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
