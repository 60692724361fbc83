package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"diggi/config"

	openai "github.com/sashabaranov/go-openai"
)

// RateCredibility asks the model for a 0-100 credibility score for a news
// source. It returns the digits of the response, the raw response when it
// contains no digits, or "N/A" on any failure.
func (c *Client) RateCredibility(ctx context.Context, source string) string {
	prompt := fmt.Sprintf("Rate the credibility (0-100) of news source '%s'. Return only the number.", source)

	raw, err := c.complete(ctx, config.CredibilityTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.0,
		MaxTokens:   6,
	})
	if err != nil {
		return "N/A"
	}

	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() > 0 {
		return digits.String()
	}
	// Non-numeric responses pass through raw so the caller still sees them.
	return raw
}
