package pipeline

import (
	"context"
	"log"
	"time"

	"diggi/config"
	"diggi/types"
)

// ArticleSource produces ranked candidate articles for a query.
type ArticleSource interface {
	Fetch(ctx context.Context, query string, maxResults int) ([]types.CandidateArticle, error)
}

// TextExtractor pulls readable text from a URL; "" means extraction failed.
type TextExtractor interface {
	Extract(ctx context.Context, url string) string
}

// Summarizer is the slice of the model client the pipeline depends on.
type Summarizer interface {
	SummarizeText(ctx context.Context, text string) (string, error)
	RateCredibility(ctx context.Context, source string) string
	SummarizeAll(ctx context.Context, articles []types.ProcessedArticle) (string, error)
	ExtractPerspectives(ctx context.Context, articles []types.ProcessedArticle) []types.PerspectiveRecord
	GenerateFollowups(ctx context.Context, combinedSummary string, n int, priorContext string) []string
}

// ResultArchiver stores a completed run somewhere durable.
type ResultArchiver interface {
	Archive(ctx context.Context, query string, result *types.PipelineResult) error
}

// EventPublisher emits a run-completed event.
type EventPublisher interface {
	Publish(query string, articleCount int) error
}

// Runner coordinates fetch → extract → summarize across up to MaxArticles
// candidates, strictly sequentially, and aggregates the terminal result.
type Runner struct {
	source      ArticleSource
	extractor   TextExtractor
	summarizer  Summarizer
	maxArticles int

	// Archiver and Publisher are optional post-run hooks; their failures are
	// logged and never affect the result.
	Archiver  ResultArchiver
	Publisher EventPublisher
}

// NewRunner wires the three collaborators. maxArticles <= 0 falls back to the
// lean API default.
func NewRunner(source ArticleSource, extractor TextExtractor, summarizer Summarizer, maxArticles int) *Runner {
	if maxArticles <= 0 {
		maxArticles = config.DefaultMaxArticles
	}
	return &Runner{
		source:      source,
		extractor:   extractor,
		summarizer:  summarizer,
		maxArticles: maxArticles,
	}
}

// Run executes one full pipeline: fetch candidates, process each in provider
// order with per-source dedup, partition into featured articles and the
// perspective pool, then synthesize the combined summary, perspectives, and
// follow-up questions. The returned result carries Error exclusive of all
// other fields; only two conditions are terminal (no usable search results,
// and zero featured articles after exhausting candidates).
func (r *Runner) Run(ctx context.Context, query, priorContext string) *types.PipelineResult {
	log.Printf("pipeline: fetching up to %d candidates for %q", r.maxArticles, query)
	candidates, err := r.source.Fetch(ctx, query, r.maxArticles)
	if err != nil {
		return &types.PipelineResult{Error: err.Error()}
	}
	if len(candidates) == 0 {
		return &types.PipelineResult{Error: "No news found."}
	}
	log.Printf("pipeline: %d candidates", len(candidates))

	var featured []types.ProcessedArticle
	var pool []types.ProcessedArticle
	seenSources := make(map[string]bool)

	for i, cand := range candidates {
		source := cand.SourceName
		if source == "" {
			source = "Unknown"
		}
		// Two articles from the same outlet are redundant even when they
		// cover different angles; the first seen wins.
		if seenSources[source] {
			log.Printf("  [%d/%d] skipping duplicate source %s", i+1, len(candidates), source)
			continue
		}

		text := r.extractor.Extract(ctx, cand.Link)
		if text == "" {
			log.Printf("  [%d/%d] extraction failed for %s", i+1, len(candidates), cand.Link)
			continue
		}

		summary, err := r.summarizer.SummarizeText(ctx, text)
		if err != nil || summary == "" {
			log.Printf("  [%d/%d] summarization failed for %s: %v", i+1, len(candidates), source, err)
			continue
		}

		if len(featured) < config.FeaturedCap {
			featured = append(featured, types.ProcessedArticle{
				Source:      source,
				URL:         cand.Link,
				Title:       cand.Title,
				Summary:     summary,
				Credibility: r.summarizer.RateCredibility(ctx, source),
				Thumbnail:   cand.Thumbnail,
			})
			log.Printf("  [%d/%d] featured: %s", i+1, len(candidates), source)
		} else {
			// Pool articles keep a lighter record: they feed perspective
			// synthesis but carry no credibility or thumbnail.
			pool = append(pool, types.ProcessedArticle{
				Source:  source,
				URL:     cand.Link,
				Title:   cand.Title,
				Summary: summary,
			})
			log.Printf("  [%d/%d] pooled: %s", i+1, len(candidates), source)
		}
		seenSources[source] = true
	}

	if len(featured) == 0 {
		return &types.PipelineResult{Error: "Could not extract or summarize any articles."}
	}

	combined, err := r.summarizer.SummarizeAll(ctx, featured)
	if err != nil {
		log.Printf("pipeline: synthesis failed: %v", err)
	}

	union := make([]types.ProcessedArticle, 0, len(featured)+len(pool))
	union = append(union, featured...)
	union = append(union, pool...)
	perspectives := r.summarizer.ExtractPerspectives(ctx, union)

	followups := r.summarizer.GenerateFollowups(ctx, combined, config.FollowupCount, priorContext)

	result := &types.PipelineResult{
		Summary:      combined,
		Articles:     featured,
		Perspectives: perspectives,
		Followups:    followups,
	}

	r.afterRun(ctx, query, result, len(featured)+len(pool))
	return result
}

// afterRun performs the best-effort archive and event publish.
func (r *Runner) afterRun(ctx context.Context, query string, result *types.PipelineResult, articleCount int) {
	if r.Archiver != nil {
		actx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := r.Archiver.Archive(actx, query, result); err != nil {
			log.Printf("pipeline: archive failed: %v", err)
		}
		cancel()
	}
	if r.Publisher != nil {
		if err := r.Publisher.Publish(query, articleCount); err != nil {
			log.Printf("pipeline: event publish failed: %v", err)
		}
	}
}
