package ai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

func NewOpenAIClient(apiKey, baseURL, model string, maxTokens int, timeout time.Duration, log *slog.Logger) *OpenAIClient {
	conf := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	conf.HTTPClient = &http.Client{Timeout: timeout}

	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(conf),
		model:     model,
		maxTokens: maxTokens,
		log:       log.With("component", "openai"),
	}
}

func (c *OpenAIClient) GetReply(
	ctx context.Context,
	systemPrompt string,
	userPrompt string,
) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		c.log.ErrorContext(ctx, "chat completion failed", "model", c.model, "error", err)
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.log.WarnContext(ctx, "empty choices", "model", c.model)
		return "", nil
	}

	c.log.DebugContext(ctx, "chat completion done",
		"model", c.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return resp.Choices[0].Message.Content, nil
}
