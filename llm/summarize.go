package llm

import (
	"context"
	"fmt"
	"strings"

	"diggi/config"
	"diggi/types"

	openai "github.com/sashabaranov/go-openai"
)

// SummarizeText produces a concise factual summary (under 80 words) of raw
// article text. The text is flattened and truncated aggressively before it
// reaches the prompt. Returns "" with the cause on any failure.
func (c *Client) SummarizeText(ctx context.Context, text string) (string, error) {
	safeText := truncate(flatten(text), config.SummarizeInputLimit)

	prompt := "You are a neutral news summarizer. Provide a concise factual summary under 80 words. " +
		"Include main event, key people involved, and outcome. No opinions.\n\n" +
		"Article:\n" + safeText

	return c.complete(ctx, config.SummarizeTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a short, factual news summarizer."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.15,
		MaxTokens:   250,
	})
}

// SummarizeAll synthesizes per-article summaries into one structured
// narrative: an intro paragraph, 3-4 bullets, and a conclusion, with no
// section headings. Returns "" with the cause on any failure.
func (c *Client) SummarizeAll(ctx context.Context, articles []types.ProcessedArticle) (string, error) {
	if len(articles) == 0 {
		return "", fmt.Errorf("no articles to synthesize")
	}

	snippets := make([]string, 0, len(articles))
	for _, a := range articles {
		if s := truncate(a.Summary, config.SnippetLimit); s != "" {
			snippets = append(snippets, s)
		}
	}
	combined := truncate(strings.Join(snippets, "\n\n"), config.CombinedInputLimit)

	prompt := "Synthesize these short article summaries into a structured news summary following this exact format:\n\n" +
		"1. A contextual introduction paragraph setting the scene for about 100 words.\n" +
		"2. 3-4 bullet points highlighting the most important details.\n" +
		"3. A concluding paragraph summarizing the overall implication.\n\n" +
		"IMPORTANT: Do NOT use headings like 'Contextual Intro' or 'Key Points'. Just provide the text directly.\n\n" +
		combined

	return c.complete(ctx, config.SynthesisTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an unbiased news synthesizer. You provide clean, header-free summaries."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
		MaxTokens:   600,
	})
}
