package newsfetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeSerpServer replays canned payloads in order, one per request, and
// records the q parameter of each.
type fakeSerpServer struct {
	srv     *httptest.Server
	queries []string
	replies []string
}

func newFakeSerpServer(replies ...string) *fakeSerpServer {
	f := &fakeSerpServer{replies: replies}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.queries = append(f.queries, r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		idx := len(f.queries) - 1
		if idx >= len(f.replies) {
			idx = len(f.replies) - 1
		}
		fmt.Fprint(w, f.replies[idx])
	}))
	return f
}

func (f *fakeSerpServer) client() *SearchClient {
	c := NewSearchClient("test-key", nil)
	c.baseURL = f.srv.URL
	return c
}

func newsPayload(n int) string {
	var items []string
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf(
			`{"title":"Story %d","link":"https://example.com/%d","source":{"name":"Outlet %d"},"thumbnail":"https://example.com/%d.jpg"}`,
			i, i, i, i))
	}
	return `{"news_results":[` + strings.Join(items, ",") + `]}`
}

func TestFetchUsesRestrictedQueryFirst(t *testing.T) {
	fake := newFakeSerpServer(newsPayload(3))
	defer fake.srv.Close()

	articles, err := fake.client().Fetch(context.Background(), "city council vote", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}
	if len(fake.queries) != 1 {
		t.Fatalf("expected a single request, got %d", len(fake.queries))
	}
	q := fake.queries[0]
	if !strings.Contains(q, "city council vote") || !strings.Contains(q, "site:bbc.com") {
		t.Errorf("first attempt should use the restricted query, got %q", q)
	}

	first := articles[0]
	if first.SourceName != "Outlet 1" || first.Link != "https://example.com/1" ||
		first.Title != "Story 1" || first.Thumbnail != "https://example.com/1.jpg" {
		t.Errorf("field mapping wrong: %+v", first)
	}
}

func TestFetchFallsBackExactlyOnce(t *testing.T) {
	fake := newFakeSerpServer(`{"news_results":[]}`, newsPayload(2))
	defer fake.srv.Close()

	articles, err := fake.client().Fetch(context.Background(), "obscure topic", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles from fallback, got %d", len(articles))
	}
	if len(fake.queries) != 2 {
		t.Fatalf("expected exactly 2 requests, got %d", len(fake.queries))
	}
	if fake.queries[1] != "obscure topic" {
		t.Errorf("fallback must be the unrestricted original query, got %q", fake.queries[1])
	}
}

func TestFetchBothAttemptsEmpty(t *testing.T) {
	fake := newFakeSerpServer(`{"news_results":[]}`)
	defer fake.srv.Close()

	articles, err := fake.client().Fetch(context.Background(), "nothing", 6)
	if err == nil {
		t.Fatal("expected error after exhausting both attempts")
	}
	if !strings.Contains(err.Error(), "no news results found") {
		t.Errorf("got %v", err)
	}
	if articles == nil || len(articles) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", articles)
	}
	if len(fake.queries) != 2 {
		t.Errorf("expected exactly 2 requests, got %d", len(fake.queries))
	}
}

func TestFetchPropagatesProviderError(t *testing.T) {
	fake := newFakeSerpServer(`{"error":"Invalid API key"}`)
	defer fake.srv.Close()

	_, err := fake.client().Fetch(context.Background(), "q", 6)
	if err == nil || !strings.Contains(err.Error(), "Invalid API key") {
		t.Errorf("provider error should surface, got %v", err)
	}
}

func TestFetchCapsAtMaxResults(t *testing.T) {
	fake := newFakeSerpServer(newsPayload(10))
	defer fake.srv.Close()

	articles, err := fake.client().Fetch(context.Background(), "busy topic", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 6 {
		t.Errorf("expected results capped at 6, got %d", len(articles))
	}
}

func TestFetchUnknownSourceName(t *testing.T) {
	fake := newFakeSerpServer(`{"news_results":[{"title":"t","link":"https://x.example/1","source":{}}]}`)
	defer fake.srv.Close()

	articles, err := fake.client().Fetch(context.Background(), "q", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if articles[0].SourceName != "Unknown" {
		t.Errorf("missing source name should map to Unknown, got %q", articles[0].SourceName)
	}
}

func TestPlanFor(t *testing.T) {
	plan := planFor("a query")
	if plan.Fallback != "a query" {
		t.Errorf("fallback must be the original query, got %q", plan.Fallback)
	}
	if !strings.HasPrefix(plan.Primary, "a query (site:") {
		t.Errorf("primary must prefix the query before the site filter, got %q", plan.Primary)
	}
	if got := plan.attempts(); len(got) != 2 {
		t.Errorf("exactly two attempts, got %d", len(got))
	}
}
