package llm

import (
	"context"
	"fmt"
	"strings"

	"diggi/config"

	openai "github.com/sashabaranov/go-openai"
)

// TranscribeAudio sends an audio file to the whisper endpoint and returns the
// transcript text.
func (c *Client) TranscribeAudio(ctx context.Context, path string) (string, error) {
	if c.api == nil {
		return "", ErrNoCredential
	}

	ctx, cancel := context.WithTimeout(ctx, config.TranscribeTimeout)
	defer cancel()

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.audioModel,
		FilePath: path,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
