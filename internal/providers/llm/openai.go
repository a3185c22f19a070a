package llm

import (
	"context"
	"errors"
	"net/http"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/wellmind-ai/wellmind-backend/internal/utils"
)

const (
	temperature = 0.7
	maxTokens   = 500
)

// OpenAI calls the chat completions API with a fixed model, temperature
// 0.7 and a 500-token output cap.
type OpenAI struct {
	client *gopenai.Client
	model  string
}

// NewOpenAI builds the provider. baseURL overrides the API endpoint and is
// meant for tests and proxies; empty means the public API.
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	cfg := gopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if model == "" {
		model = gopenai.GPT4oMini
	}

	return &OpenAI{
		client: gopenai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	const op = "OpenAI.Complete"

	msgs := make([]gopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, gopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		var apiErr *gopenai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusUnauthorized {
			return "", utils.E(utils.CodeAuth, op, "Invalid OpenAI API key. Please check your OPENAI_API_KEY.", err)
		}
		return "", utils.E(utils.CodeUpstream, op, "An error occurred while processing your request.", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
