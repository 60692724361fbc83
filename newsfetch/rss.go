package newsfetch

import (
	"context"
	"fmt"
	"log"
	"strings"

	"diggi/types"

	"github.com/mmcdole/gofeed"
)

// DefaultFeeds are the feeds consulted when the caller configures none.
var DefaultFeeds = []string{
	"https://feeds.bbci.co.uk/news/world/rss.xml",
	"http://rss.cnn.com/rss/edition_world.rss",
	"https://www.theguardian.com/world/rss",
}

// FeedSource serves candidates from RSS/Atom feeds. It backs the pipeline
// when no search credential is configured, returning items whose title or
// description mention the query terms, in feed order.
type FeedSource struct {
	feeds  []string
	parser *gofeed.Parser
}

var _ Source = (*FeedSource)(nil)

// NewFeedSource builds a feed-backed article source.
func NewFeedSource(feeds []string) *FeedSource {
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	return &FeedSource{
		feeds:  feeds,
		parser: gofeed.NewParser(),
	}
}

// Fetch scans the configured feeds in order and returns up to maxResults
// matching items. A feed that fails to parse is skipped, not fatal.
func (s *FeedSource) Fetch(ctx context.Context, query string, maxResults int) ([]types.CandidateArticle, error) {
	terms := strings.Fields(strings.ToLower(query))
	articles := make([]types.CandidateArticle, 0, maxResults)

	for _, feedURL := range s.feeds {
		if len(articles) >= maxResults {
			break
		}

		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			log.Printf("newsfetch: skipping feed %s: %v", feedURL, err)
			continue
		}

		sourceName := feed.Title
		if sourceName == "" {
			sourceName = feedURL
		}

		for _, item := range feed.Items {
			if len(articles) >= maxResults {
				break
			}
			if !matchesTerms(item, terms) {
				continue
			}

			article := types.CandidateArticle{
				SourceName: sourceName,
				Link:       item.Link,
				Title:      item.Title,
			}
			if item.Image != nil {
				article.Thumbnail = item.Image.URL
			}
			articles = append(articles, article)
		}
	}

	if len(articles) == 0 {
		return []types.CandidateArticle{}, fmt.Errorf("no feed items matched query")
	}
	return articles, nil
}

// matchesTerms reports whether any query term appears in the item's title or
// description. An empty query matches everything.
func matchesTerms(item *gofeed.Item, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(item.Title + " " + item.Description)
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}
