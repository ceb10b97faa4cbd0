package ai

import "context"

// AI is the external text generator. It knows nothing about reviews or storage.
// An empty reply with a nil error means the provider returned no content.
type AI interface {
	GetReply(
		ctx context.Context,
		systemPrompt string,
		userPrompt string,
	) (string, error)
}
