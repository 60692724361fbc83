package llm

import (
	"context"
	"strings"

	"diggi/config"

	openai "github.com/sashabaranov/go-openai"
)

// ExtractKeywords pulls the top 3-5 keywords from a block of text,
// comma-separated. Used to turn URLs and uploads into searchable queries.
func (c *Client) ExtractKeywords(ctx context.Context, text string) (string, error) {
	prompt := "You are an AI assistant that extracts the most important keywords from a block of text. " +
		"Please provide the top 3-5 keywords, separated by commas.\n\n" +
		"Text: " + text

	return c.complete(ctx, config.KeywordTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an AI assistant that extracts keywords from text."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
		MaxTokens:   50,
	})
}

// ExtractEventLocation identifies the primary real-world location of the main
// event in the text. Returns "" when the model finds none.
func (c *Client) ExtractEventLocation(ctx context.Context, text string) (string, error) {
	safeText := truncate(flatten(text), config.LocationInputLimit)

	prompt := "From the following text, identify the primary real-world location (city, state, country) of the main event described. " +
		"Return only the location name. If no specific location is mentioned, return 'N/A'.\n\n" +
		"Text: " + safeText

	location, err := c.complete(ctx, config.LocationTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an AI assistant that extracts locations from text."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.0,
		MaxTokens:   60,
	})
	if err != nil {
		return "", err
	}
	if strings.EqualFold(location, "N/A") {
		return "", nil
	}
	return location, nil
}

// DescribeImage describes a news scene from a base64-encoded JPEG, sending
// the image reference alongside the text prompt in one message.
func (c *Client) DescribeImage(ctx context.Context, imageBase64 string) (string, error) {
	return c.complete(ctx, config.ImageTimeout, openai.ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "The uploaded image contains a real news scene. Describe the scene concisely, focusing on objective details and likely context.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + imageBase64,
						},
					},
				},
			},
		},
		Temperature: 0.4,
		MaxTokens:   400,
	})
}
