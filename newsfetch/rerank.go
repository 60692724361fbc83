package newsfetch

import (
	"context"
	"log"
	"net/http"

	"diggi/config"
	"diggi/types"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// Reranker reorders candidates by relevance to the query using the Cohere
// Rerank API. Any failure leaves the provider order untouched, so enabling
// reranking can never lose articles.
type Reranker struct {
	client *cohereclient.Client
	model  string
}

// NewReranker builds a reranker, or nil when no API key is configured.
func NewReranker(apiKey, model string) *Reranker {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = config.DefaultRerankModel
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(&http.Client{Timeout: config.RerankTimeout}),
	)
	return &Reranker{client: client, model: model}
}

// Rerank returns the candidates ordered by relevance to query.
func (r *Reranker) Rerank(ctx context.Context, query string, articles []types.CandidateArticle) []types.CandidateArticle {
	if len(articles) < 2 {
		return articles
	}

	docs := make([]string, len(articles))
	for i, a := range articles {
		docs[i] = a.Title
	}

	rctx, cancel := context.WithTimeout(ctx, config.RerankTimeout)
	defer cancel()

	resp, err := r.client.V2.Rerank(rctx, &cohere.V2RerankRequest{
		Model:     r.model,
		Query:     query,
		Documents: docs,
	})
	if err != nil {
		log.Printf("newsfetch: rerank failed, keeping provider order: %v", err)
		return articles
	}
	if resp == nil || len(resp.Results) == 0 {
		return articles
	}

	reordered := make([]types.CandidateArticle, 0, len(articles))
	seen := make(map[int]bool, len(articles))
	for _, res := range resp.Results {
		if res.Index < 0 || res.Index >= len(articles) || seen[res.Index] {
			continue
		}
		seen[res.Index] = true
		reordered = append(reordered, articles[res.Index])
	}
	// Keep anything the response omitted, in original order.
	for i, a := range articles {
		if !seen[i] {
			reordered = append(reordered, a)
		}
	}
	return reordered
}
