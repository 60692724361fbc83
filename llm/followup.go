package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"diggi/config"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateFollowups proposes up to n short follow-up questions about the
// combined summary, optionally conditioned on prior conversation context.
// Returns an empty list on empty input or any failure.
func (c *Client) GenerateFollowups(ctx context.Context, combinedSummary string, n int, priorContext string) []string {
	if combinedSummary == "" {
		return []string{}
	}

	safeSummary := truncate(combinedSummary, config.FollowupInputLimit)

	prompt := ""
	if priorContext != "" {
		prompt += fmt.Sprintf("Previous context:\n%s\n\n", priorContext)
	}
	prompt += fmt.Sprintf("Suggest %d short follow-up questions (why/how/what-if) about this summary:\n\n%s", n, safeSummary)

	text, err := c.complete(ctx, config.FollowupTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You propose curiosity-driven questions."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.35,
		MaxTokens:   200,
	})
	if err != nil {
		return []string{}
	}

	questions := make([]string, 0, n)
	for _, line := range strings.Split(text, "\n") {
		q := strings.Trim(line, "•-1234567890.* ")
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) == n {
			break
		}
	}
	return questions
}

// AnswerFollowup answers one free-text question against caller-supplied
// context (typically a prior combined summary). This is a direct user-facing
// reply surface, so failures are rendered as descriptive strings rather than
// errors.
func (c *Client) AnswerFollowup(ctx context.Context, question, priorContext string) string {
	prompt := "Answer the question concisely (3-4 lines)."
	if priorContext != "" {
		prompt += fmt.Sprintf("\n\nContext:\n%s", truncate(priorContext, config.AnswerContextLimit))
	}
	prompt += fmt.Sprintf("\n\nQuestion: %s", question)

	answer, err := c.complete(ctx, config.FollowupTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You answer follow-up news questions concisely and factually."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
		MaxTokens:   300,
	})
	if errors.Is(err, ErrNoCredential) {
		return "N/A (GROQ key not set)"
	}
	if err != nil {
		return "Error: Could not generate answer."
	}
	return answer
}
