package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// CandidateArticle is a search result that has not been processed yet.
// It lives only for the duration of one pipeline run.
type CandidateArticle struct {
	SourceName string `json:"source_name"`
	Link       string `json:"link"`
	Title      string `json:"title"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}

// ProcessedArticle is a candidate whose text was extracted and summarized.
// At most one ProcessedArticle exists per distinct source name per run.
type ProcessedArticle struct {
	Source      string `json:"source"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Credibility string `json:"credibility,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// PerspectiveRecord is a societal viewpoint synthesized across articles.
// It is not owned by any single source.
type PerspectiveRecord struct {
	Perspective     string   `json:"perspective"`
	Summary         string   `json:"summary"`
	InterestingFact string   `json:"interesting_fact"`
	Articles        []string `json:"articles"`
}

// PipelineResult is the terminal output of one orchestration run.
// Error is set exclusive of the other fields.
type PipelineResult struct {
	Summary      string             `json:"summary,omitempty"`
	Articles     []ProcessedArticle `json:"articles,omitempty"`
	Perspectives []PerspectiveRecord `json:"perspectives,omitempty"`
	Followups    []string           `json:"followup_questions,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// GenerateID creates a short stable ID from a URL
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
