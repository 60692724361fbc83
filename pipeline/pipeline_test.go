package pipeline

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"diggi/types"
)

type fakeSource struct {
	articles []types.CandidateArticle
	err      error
	calls    int
}

func (f *fakeSource) Fetch(ctx context.Context, query string, maxResults int) ([]types.CandidateArticle, error) {
	f.calls++
	if f.err != nil {
		return []types.CandidateArticle{}, f.err
	}
	if len(f.articles) > maxResults {
		return f.articles[:maxResults], nil
	}
	return f.articles, nil
}

type fakeExtractor struct {
	// texts maps URL to extracted text; missing URL means extraction failure
	texts map[string]string
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) string {
	return f.texts[url]
}

type fakeSummarizer struct {
	summarizeErr error
	synthesisErr error

	ratedSources     []string
	perspectiveInput []types.ProcessedArticle
}

func (f *fakeSummarizer) SummarizeText(ctx context.Context, text string) (string, error) {
	if f.summarizeErr != nil {
		return "", f.summarizeErr
	}
	return "summary of " + text, nil
}

func (f *fakeSummarizer) RateCredibility(ctx context.Context, source string) string {
	f.ratedSources = append(f.ratedSources, source)
	return "80"
}

func (f *fakeSummarizer) SummarizeAll(ctx context.Context, articles []types.ProcessedArticle) (string, error) {
	if f.synthesisErr != nil {
		return "", f.synthesisErr
	}
	return fmt.Sprintf("combined summary of %d articles", len(articles)), nil
}

func (f *fakeSummarizer) ExtractPerspectives(ctx context.Context, articles []types.ProcessedArticle) []types.PerspectiveRecord {
	f.perspectiveInput = append([]types.ProcessedArticle{}, articles...)
	return []types.PerspectiveRecord{
		{Perspective: "Economic impact", Summary: "money", Articles: []string{}},
	}
}

func (f *fakeSummarizer) GenerateFollowups(ctx context.Context, combinedSummary string, n int, priorContext string) []string {
	if combinedSummary == "" {
		return []string{}
	}
	questions := make([]string, n)
	for i := range questions {
		questions[i] = fmt.Sprintf("why %d?", i+1)
	}
	return questions
}

func candidates(n int) []types.CandidateArticle {
	out := make([]types.CandidateArticle, n)
	for i := range out {
		out[i] = types.CandidateArticle{
			SourceName: fmt.Sprintf("Outlet %d", i+1),
			Link:       fmt.Sprintf("https://example.com/%d", i+1),
			Title:      fmt.Sprintf("Story %d", i+1),
			Thumbnail:  fmt.Sprintf("https://example.com/%d.jpg", i+1),
		}
	}
	return out
}

func textsFor(arts []types.CandidateArticle) map[string]string {
	texts := make(map[string]string, len(arts))
	for _, a := range arts {
		texts[a.Link] = "article text for " + a.Title
	}
	return texts
}

func TestRunSourceErrorShortCircuits(t *testing.T) {
	source := &fakeSource{err: errors.New("search provider unavailable")}
	runner := NewRunner(source, &fakeExtractor{}, &fakeSummarizer{}, 6)

	result := runner.Run(context.Background(), "city council vote", "")

	if result.Error != "search provider unavailable" {
		t.Fatalf("expected terminal error, got %q", result.Error)
	}
	if result.Summary != "" || len(result.Articles) != 0 || len(result.Perspectives) != 0 || len(result.Followups) != 0 {
		t.Errorf("terminal error must not carry partial output: %+v", result)
	}
}

func TestRunNoCandidatesShortCircuits(t *testing.T) {
	runner := NewRunner(&fakeSource{}, &fakeExtractor{}, &fakeSummarizer{}, 6)

	result := runner.Run(context.Background(), "obscure topic", "")

	if result.Error != "No news found." {
		t.Fatalf("expected no-news error, got %q", result.Error)
	}
}

func TestRunPartitionsFeaturedAndPool(t *testing.T) {
	arts := candidates(5)
	summarizer := &fakeSummarizer{}
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, summarizer, 6)

	result := runner.Run(context.Background(), "city council vote", "")

	if result.Error != "" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
	if len(result.Articles) != 4 {
		t.Fatalf("expected 4 featured articles, got %d", len(result.Articles))
	}
	if result.Summary == "" {
		t.Error("expected non-empty combined summary")
	}
	if len(result.Perspectives) == 0 {
		t.Error("expected non-empty perspectives")
	}
	if len(result.Followups) == 0 || len(result.Followups) > 5 {
		t.Errorf("expected 1-5 followups, got %d", len(result.Followups))
	}

	// The fifth article lands in the pool: not featured, but still feeding
	// perspective synthesis.
	if len(summarizer.perspectiveInput) != 5 {
		t.Fatalf("expected perspectives over 5 articles, got %d", len(summarizer.perspectiveInput))
	}
	pooled := summarizer.perspectiveInput[4]
	if pooled.Source != "Outlet 5" {
		t.Errorf("expected Outlet 5 pooled, got %s", pooled.Source)
	}
	if pooled.Credibility != "" || pooled.Thumbnail != "" {
		t.Errorf("pooled article should carry a lighter record: %+v", pooled)
	}
}

func TestRunFeaturedCarryCredibilityAndThumbnail(t *testing.T) {
	arts := candidates(4)
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, &fakeSummarizer{}, 6)

	result := runner.Run(context.Background(), "topic", "")

	for i, a := range result.Articles {
		if a.Credibility != "80" {
			t.Errorf("featured article %d missing credibility: %+v", i, a)
		}
		if a.Thumbnail == "" {
			t.Errorf("featured article %d missing thumbnail: %+v", i, a)
		}
	}
}

func TestRunPooledSourcesAreNotRated(t *testing.T) {
	arts := candidates(6)
	summarizer := &fakeSummarizer{}
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, summarizer, 6)

	runner.Run(context.Background(), "topic", "")

	if len(summarizer.ratedSources) != 4 {
		t.Fatalf("expected credibility rated for featured articles only, rated %v", summarizer.ratedSources)
	}
	for _, s := range summarizer.ratedSources {
		if s == "Outlet 5" || s == "Outlet 6" {
			t.Errorf("pooled source %s should not be rated", s)
		}
	}
}

func TestRunDedupsBySourceName(t *testing.T) {
	arts := []types.CandidateArticle{
		{SourceName: "Outlet A", Link: "https://a.example/1", Title: "first"},
		{SourceName: "Outlet B", Link: "https://b.example/1", Title: "second"},
		{SourceName: "Outlet A", Link: "https://a.example/2", Title: "third"},
	}
	summarizer := &fakeSummarizer{}
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, summarizer, 6)

	result := runner.Run(context.Background(), "x", "")

	if result.Error != "" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
	seen := make(map[string]int)
	for _, a := range summarizer.perspectiveInput {
		seen[a.Source]++
	}
	if len(seen) != 2 || seen["Outlet A"] != 1 || seen["Outlet B"] != 1 {
		t.Errorf("expected exactly 2 distinct sources, got %v", seen)
	}
	// First seen wins.
	if result.Articles[0].URL != "https://a.example/1" {
		t.Errorf("expected first Outlet A article kept, got %s", result.Articles[0].URL)
	}
}

func TestRunSkipsFailedExtractions(t *testing.T) {
	arts := candidates(3)
	texts := textsFor(arts)
	delete(texts, arts[1].Link)
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: texts}, &fakeSummarizer{}, 6)

	result := runner.Run(context.Background(), "topic", "")

	if result.Error != "" {
		t.Fatalf("extraction failure must not abort the run: %q", result.Error)
	}
	if len(result.Articles) != 2 {
		t.Errorf("expected 2 featured articles, got %d", len(result.Articles))
	}
}

func TestRunZeroFeaturedIsTerminal(t *testing.T) {
	arts := candidates(3)
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{}, &fakeSummarizer{}, 6)

	result := runner.Run(context.Background(), "topic", "")

	if result.Error == "" {
		t.Fatal("expected terminal error when nothing could be processed")
	}
	if len(result.Articles) != 0 {
		t.Errorf("terminal error must not carry articles")
	}
}

func TestRunSynthesisFailureDegrades(t *testing.T) {
	arts := candidates(2)
	summarizer := &fakeSummarizer{synthesisErr: errors.New("model call failed")}
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, summarizer, 6)

	result := runner.Run(context.Background(), "topic", "")

	if result.Error != "" {
		t.Fatalf("synthesis failure must not be terminal: %q", result.Error)
	}
	if result.Summary != "" {
		t.Errorf("expected empty combined summary, got %q", result.Summary)
	}
	if len(result.Followups) != 0 {
		t.Errorf("expected no followups without a combined summary, got %v", result.Followups)
	}
	if len(result.Articles) != 2 {
		t.Errorf("articles should survive synthesis failure, got %d", len(result.Articles))
	}
}

func TestRunIsIdempotent(t *testing.T) {
	arts := candidates(5)

	run := func() *types.PipelineResult {
		runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, &fakeSummarizer{}, 6)
		return runner.Run(context.Background(), "city council vote", "prior context")
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs must produce identical results:\n%+v\n%+v", first, second)
	}
}

type fakeArchiver struct {
	calls int
	err   error
}

func (f *fakeArchiver) Archive(ctx context.Context, query string, result *types.PipelineResult) error {
	f.calls++
	return f.err
}

type fakePublisher struct {
	queries []string
	counts  []int
}

func (f *fakePublisher) Publish(query string, articleCount int) error {
	f.queries = append(f.queries, query)
	f.counts = append(f.counts, articleCount)
	return nil
}

func TestRunPostRunHooks(t *testing.T) {
	arts := candidates(5)
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, &fakeSummarizer{}, 6)
	archiver := &fakeArchiver{err: errors.New("bucket gone")}
	publisher := &fakePublisher{}
	runner.Archiver = archiver
	runner.Publisher = publisher

	result := runner.Run(context.Background(), "topic", "")

	if result.Error != "" {
		t.Fatalf("hook failures must never surface: %q", result.Error)
	}
	if archiver.calls != 1 {
		t.Errorf("expected one archive call, got %d", archiver.calls)
	}
	if len(publisher.counts) != 1 || publisher.counts[0] != 5 {
		t.Errorf("expected publish with featured+pool count 5, got %v", publisher.counts)
	}
}

func TestRunHooksSkippedOnTerminalError(t *testing.T) {
	runner := NewRunner(&fakeSource{err: errors.New("down")}, &fakeExtractor{}, &fakeSummarizer{}, 6)
	archiver := &fakeArchiver{}
	runner.Archiver = archiver

	runner.Run(context.Background(), "topic", "")

	if archiver.calls != 0 {
		t.Errorf("terminal runs must not be archived")
	}
}

func TestRunUnknownSourceNameStillDedups(t *testing.T) {
	arts := []types.CandidateArticle{
		{SourceName: "", Link: "https://x.example/1", Title: "one"},
		{SourceName: "", Link: "https://y.example/2", Title: "two"},
	}
	runner := NewRunner(&fakeSource{articles: arts}, &fakeExtractor{texts: textsFor(arts)}, &fakeSummarizer{}, 6)

	result := runner.Run(context.Background(), "x", "")

	if len(result.Articles) != 1 {
		t.Errorf("empty source names collapse to one Unknown entry, got %d", len(result.Articles))
	}
	if !strings.EqualFold(result.Articles[0].Source, "Unknown") {
		t.Errorf("expected Unknown source, got %q", result.Articles[0].Source)
	}
}
