package services

import (
	"fmt"
	"strings"

	"github.com/shashiranjanraj/backoffice/app/apperr"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/http"
)

// DefaultCompletionsURL is the chat-completions endpoint of the external
// generation service.
const DefaultCompletionsURL = "https://api.openai.com/v1/chat/completions"

const (
	// FieldName and FieldDescription are the only fields the gateway
	// generates copy for.
	FieldName        = "name"
	FieldDescription = "description"

	systemPrompt = "You are an SEO specialist for e-commerce."

	// Output budgets per field: names are short, descriptions are not.
	nameMaxTokens        = 20
	descriptionMaxTokens = 120
)

// SuggestService builds a field-specific SEO prompt, calls the external
// completion API once, and returns the first suggestion. It never touches
// the product store or cache.
type SuggestService struct {
	url    string
	apiKey string
	model  string
}

func NewSuggestService() *SuggestService {
	return &SuggestService{
		url:    DefaultCompletionsURL,
		apiKey: config.OpenAIKey(),
		model:  config.OpenAIModel(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggest returns one generated string for the given field. The context may
// be empty; the prompt then simply carries an empty context clause. A single
// attempt is made; upstream failures are not retried.
func (s *SuggestService) Suggest(field, context string) (string, error) {
	prompt, maxTokens, err := buildPrompt(field, context)
	if err != nil {
		return "", err
	}

	resp, err := http.Post(s.url).
		Bearer(s.apiKey).
		Body(chatRequest{
			Model: s.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: prompt},
			},
			MaxTokens:   maxTokens,
			Temperature: 0.7,
		}).
		Send()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}

	if !resp.OK() {
		return "", fmt.Errorf("%w: completion API returned status %d", apperr.ErrUpstream, resp.StatusCode)
	}

	var out chatResponse
	if err := resp.JSON(&out); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: completion API returned no choices", apperr.ErrUpstream)
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// buildPrompt selects the per-field template and output budget. Both
// templates instruct the model to return only the requested text.
func buildPrompt(field, context string) (string, int, error) {
	switch field {
	case FieldName:
		return fmt.Sprintf(
			"Generate an SEO-optimized product name. Return only the name, with no other text. Context: %s",
			context,
		), nameMaxTokens, nil
	case FieldDescription:
		return fmt.Sprintf(
			"Generate an SEO-optimized product description, persuasive and clear. Return only the description, with no other text. Context: %s",
			context,
		), descriptionMaxTokens, nil
	default:
		return "", 0, fmt.Errorf("%w: invalid suggestion field %q", apperr.ErrValidation, field)
	}
}
