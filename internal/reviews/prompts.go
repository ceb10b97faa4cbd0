package reviews

import "fmt"

const SystemPrompt = "You are an expert customer service manager. " +
	"Your goal is to de-escalate angry customers and protect the brand's reputation. " +
	"Keep responses under 100 words."

// FallbackResponse is stored when the model answers with no text at all.
const FallbackResponse = "Could not generate response."

const userPromptTemplate = "Write a response to this review: '%s'. Use a %s tone. " +
	"Do not include placeholders like [Your Name]; sign it as 'The Management Team'."

func UserPrompt(text string, tone Tone) string {
	return fmt.Sprintf(userPromptTemplate, text, tone)
}
