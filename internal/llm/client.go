package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"movewiki/internal/domain"
)

// Client wraps the OpenAI chat-completion API as the pipeline's Completer.
type Client struct {
	api       *openai.Client
	maxTokens int
}

// Config configures the completion client. MaxTokens is the per-call token
// ceiling; zero selects the default of 500.
type Config struct {
	APIKey    string
	MaxTokens int
}

// NewClient creates a completion client. The API key must be supplied by
// the caller, typically from the environment.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing OpenAI API key")
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}
	return &Client{api: openai.NewClient(cfg.APIKey), maxTokens: maxTokens}, nil
}

// Complete performs a single synchronous chat completion with the prompt as
// the sole user message.
func (c *Client) Complete(ctx context.Context, prompt, model string) (*domain.Generation, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}
	return &domain.Generation{
		Answer: resp.Choices[0].Message.Content,
		Usage: domain.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
