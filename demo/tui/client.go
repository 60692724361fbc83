package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"diggi/types"
)

// APIClient is a thin HTTP client for the diggi API
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			// Full pipeline runs many sequential model calls
			Timeout: 5 * time.Minute,
		},
	}
}

// Analyze runs the full pipeline for a topic query
func (c *APIClient) Analyze(query, context string) (*types.PipelineResult, error) {
	body, err := json.Marshal(map[string]string{
		"query":   query,
		"context": context,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(c.baseURL+"/analyze", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result types.PipelineResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return nil, fmt.Errorf("server error: %s", result.Error)
		}
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}
	return &result, nil
}

// Followup asks one question against the prior combined summary
func (c *APIClient) Followup(question, context string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"question": question,
		"context":  context,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.client.Post(c.baseURL+"/followup", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to ask followup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}

	var parsed struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return parsed.Answer, nil
}
