package extract

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"diggi/config"

	readability "github.com/go-shiori/go-readability"
)

// Extractor downloads a page and pulls out its main readable text.
// Every failure mode resolves to an empty string; extraction is never fatal
// to the caller.
type Extractor struct {
	httpClient *http.Client
}

// NewExtractor builds an extractor with the default download timeout.
func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: &http.Client{Timeout: config.ExtractTimeout},
	}
}

// Extract returns the readable article text at rawURL, or "" if the page
// cannot be downloaded or yields no content.
func (e *Extractor) Extract(ctx context.Context, rawURL string) string {
	if rawURL == "" {
		return ""
	}
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}
