package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"diggi/config"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoCredential is returned when GROQ_API_KEY is absent. Every operation
// short-circuits to its documented fallback value without network I/O.
var ErrNoCredential = errors.New("GROQ_API_KEY not set")

// Client talks to an OpenAI-compatible chat endpoint (Groq by default) and
// implements the full summarizer family. Operations degrade to documented
// empty/"N/A" values on missing credential, transport error, non-success
// status, or unparseable response; none of these propagate as panics.
type Client struct {
	api         *openai.Client
	chatModel   string
	visionModel string
	audioModel  string
}

// NewClient builds a client from configuration. A missing key yields a
// client whose every call fails fast with ErrNoCredential.
func NewClient(cfg config.Config) *Client {
	c := &Client{
		chatModel:   cfg.ChatModel,
		visionModel: cfg.VisionModel,
		audioModel:  cfg.AudioModel,
	}
	if cfg.GroqAPIKey == "" {
		return c
	}

	apiCfg := openai.DefaultConfig(cfg.GroqAPIKey)
	if cfg.GroqBaseURL != "" {
		apiCfg.BaseURL = cfg.GroqBaseURL
	}
	c.api = openai.NewClientWithConfig(apiCfg)
	return c
}

// complete sends one chat request and returns the first choice's text.
func (c *Client) complete(ctx context.Context, timeout time.Duration, req openai.ChatCompletionRequest) (string, error) {
	if c.api == nil {
		return "", ErrNoCredential
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// truncate caps s at limit bytes.
func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// flatten collapses newlines so article text fits a single prompt line.
func flatten(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}
