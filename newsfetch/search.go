package newsfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"diggi/config"
	"diggi/types"
)

// Source produces ranked candidate articles for a topic query.
type Source interface {
	Fetch(ctx context.Context, query string, maxResults int) ([]types.CandidateArticle, error)
}

// trustedSites restricts results to major global outlets. Hard paywalls
// (WSJ, Bloomberg, NYT) are excluded to keep extraction success high.
const trustedSites = "site:bbc.com OR site:cnn.com OR site:reuters.com OR site:theguardian.com OR " +
	"site:cnbc.com OR site:apnews.com OR site:aljazeera.com OR site:npr.org OR " +
	"site:cbsnews.com OR site:abcnews.go.com OR site:nbcnews.com OR site:usatoday.com OR " +
	"site:politico.com OR site:foxnews.com"

// queryPlan is the two-stage retry policy: the refined query first, then one
// fallback to the caller's original query if the first stage returns nothing.
type queryPlan struct {
	Primary  string
	Fallback string
}

func planFor(query string) queryPlan {
	return queryPlan{
		Primary:  fmt.Sprintf("%s (%s)", query, trustedSites),
		Fallback: query,
	}
}

func (p queryPlan) attempts() []string {
	return []string{p.Primary, p.Fallback}
}

// SearchClient wraps the SerpApi Google News engine.
type SearchClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	reranker   *Reranker
}

var _ Source = (*SearchClient)(nil)

// NewSearchClient builds a search-backed article source. The reranker is
// optional; nil leaves results in provider order.
func NewSearchClient(apiKey string, reranker *Reranker) *SearchClient {
	return &SearchClient{
		apiKey:   apiKey,
		baseURL:  "https://serpapi.com/search.json",
		reranker: reranker,
		httpClient: &http.Client{
			Timeout: config.SearchTimeout,
		},
	}
}

// Fetch returns up to maxResults candidates in provider-ranked order
// (rerankers excepted). On failure it returns an empty list and the provider
// error; it never panics. The restricted query is tried first, then the
// original query once, with no further retries.
func (c *SearchClient) Fetch(ctx context.Context, query string, maxResults int) ([]types.CandidateArticle, error) {
	var lastErr error
	for _, q := range planFor(query).attempts() {
		articles, err := c.search(ctx, q)
		if err != nil {
			lastErr = err
			continue
		}
		if len(articles) == 0 {
			lastErr = fmt.Errorf("no news results found")
			continue
		}

		if c.reranker != nil {
			articles = c.reranker.Rerank(ctx, query, articles)
		}
		if len(articles) > maxResults {
			articles = articles[:maxResults]
		}
		return articles, nil
	}
	return []types.CandidateArticle{}, lastErr
}

// newsResponse mirrors the slice of the SerpApi payload we consume.
type newsResponse struct {
	NewsResults []struct {
		Title  string `json:"title"`
		Link   string `json:"link"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Thumbnail string `json:"thumbnail"`
	} `json:"news_results"`
	Error string `json:"error"`
}

func (c *SearchClient) search(ctx context.Context, query string) ([]types.CandidateArticle, error) {
	params := url.Values{}
	params.Set("engine", "google_news")
	params.Set("q", query)
	params.Set("gl", "us")
	params.Set("hl", "en")
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("new search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	var parsed newsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("search provider: %s", parsed.Error)
	}

	articles := make([]types.CandidateArticle, 0, len(parsed.NewsResults))
	for _, r := range parsed.NewsResults {
		name := r.Source.Name
		if name == "" {
			name = "Unknown"
		}
		articles = append(articles, types.CandidateArticle{
			SourceName: name,
			Link:       r.Link,
			Title:      r.Title,
			Thumbnail:  r.Thumbnail,
		})
	}
	return articles, nil
}
