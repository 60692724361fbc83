package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"diggi/config"
	"diggi/types"

	openai "github.com/sashabaranov/go-openai"
)

// ExtractPerspectives asks the model to enumerate the distinct societal
// perspectives present across the given articles. The model is instructed to
// emit a strict JSON array; parsing is two-phase (see parsePerspectives).
// Returns an empty list on missing credential, empty input, or call failure.
func (c *Client) ExtractPerspectives(ctx context.Context, articles []types.ProcessedArticle) []types.PerspectiveRecord {
	if c.api == nil || len(articles) == 0 {
		return []types.PerspectiveRecord{}
	}

	snippets := make([]string, 0, len(articles))
	for _, a := range articles {
		snippets = append(snippets, fmt.Sprintf("Source: %s\nTitle: %s\nSummary: %s\nURL: %s",
			a.Source, a.Title, a.Summary, a.URL))
	}

	prompt := "You are a neutral analyst. From the following list of news article summaries, " +
		"identify the distinct **societal perspectives** (e.g., public safety, economic impact, " +
		"humanitarian concerns, legal/constitutional issues, technological implications, " +
		"ethnic/religious tension, labor/workforce stress). For each perspective, output:\n\n" +
		"1) Perspective name (one short phrase)\n" +
		"2) 3-4 line concise summary explaining 'what is this perspective' in the context of the news\n" +
		"3) An 'interesting_fact' related to this specific perspective (a statistic, historical precedent, or surprising detail)\n" +
		"4) If any of the articles mention or support this perspective, include their URLs in a list.\n\n" +
		"Return valid JSON only. The output must be a JSON array of objects with keys: perspective, summary, interesting_fact, articles (array of strings). " +
		"Do not include markdown formatting, code blocks, or conversational text.\n\n" +
		"Articles:\n\n" + strings.Join(snippets, "\n\n---\n\n")

	raw, err := c.complete(ctx, config.PerspectiveTimeout, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an expert news analyst that extracts societal perspectives."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.15,
		MaxTokens:   800,
	})
	if err != nil {
		return []types.PerspectiveRecord{}
	}

	allURLs := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.URL != "" {
			allURLs = append(allURLs, a.URL)
		}
	}
	return parsePerspectives(raw, allURLs)
}

// perspectivePayload tolerates the model naming the perspective field either
// "perspective" or "name".
type perspectivePayload struct {
	Perspective     string   `json:"perspective"`
	Name            string   `json:"name"`
	Summary         string   `json:"summary"`
	InterestingFact string   `json:"interesting_fact"`
	Articles        []string `json:"articles"`
}

// parsePerspectives is the two-phase parse of free-form model output. Phase
// one attempts a strict JSON decode of the substring bounded by the outermost
// array markers. Phase two, on failure, wraps the raw text into a single
// "Analysis" record that carries every input article URL, so no article
// silently disappears.
func parsePerspectives(raw string, allURLs []string) []types.PerspectiveRecord {
	candidate := raw
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start != -1 && end != -1 && start < end {
		candidate = raw[start : end+1]
	}

	var parsed []perspectivePayload
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return []types.PerspectiveRecord{{
			Perspective: "Analysis",
			Summary:     raw,
			Articles:    allURLs,
		}}
	}

	out := make([]types.PerspectiveRecord, 0, len(parsed))
	for _, p := range parsed {
		name := p.Perspective
		if name == "" {
			name = p.Name
		}
		articles := p.Articles
		if articles == nil {
			articles = []string{}
		}
		out = append(out, types.PerspectiveRecord{
			Perspective:     name,
			Summary:         p.Summary,
			InterestingFact: p.InterestingFact,
			Articles:        articles,
		})
	}
	return out
}
