package reviews

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Vovarama1992/review-reply/internal/ai"
)

type responder struct {
	ai  ai.AI
	log *slog.Logger
}

// NewGenerator wraps an AI client with the review reply prompts.
// Each call makes exactly one request to the client and never retries.
func NewGenerator(client ai.AI, log *slog.Logger) Generator {
	return &responder{
		ai:  client,
		log: log.With("component", "generator"),
	}
}

func (r *responder) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	raw, err := r.ai.GetReply(ctx, SystemPrompt, UserPrompt(req.Text, req.Tone))
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		r.log.WarnContext(ctx, "empty completion, using fallback", "tone", req.Tone)
		return FallbackResponse, nil
	}

	return reply, nil
}
