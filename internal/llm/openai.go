package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultTimeout bounds a single completion call when the configuration
// does not set one.
const DefaultTimeout = 30 * time.Second

// Config holds the settings for the completion client.
type Config struct {
	APIKey  string
	BaseURL string // OpenAI-compatible endpoint; Groq in the default setup
	Model   string
	Timeout time.Duration // per-call budget; 0 means DefaultTimeout
}

// UpstreamError wraps any failure of the completion call: transport or
// auth errors, and responses carrying no choices.  Upstream failures are
// terminal for the request; there are no retries.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client is the completion interface the analysis service consumes.
// Complete sends one system+user exchange and returns the model's raw
// text reply unaltered.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIClient calls an OpenAI-compatible chat completion API with a
// fixed model.  The BaseURL override points it at Groq without changing
// the wire protocol.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient constructs a completion client from the given config.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Complete sends the prompt pair and returns the first choice's content.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Err: errors.New("completion returned no choices")}
	}
	return resp.Choices[0].Message.Content, nil
}
