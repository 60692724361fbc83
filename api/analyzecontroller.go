package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AnalyzeRequest is the payload for /analyze: a topic query or a URL, plus
// optional prior-summary context for follow-up generation.
type AnalyzeRequest struct {
	Query   string `json:"query" binding:"required"`
	Context string `json:"context"`
}

// handleAnalyze is the main entry point. URLs are resolved to a searchable
// query first (extract → summarize → keywords); plain topics go straight to
// the pipeline. Identical query+context pairs are served from cache.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if cached := s.queryCache.Get(ctx, req.Query, req.Context); cached != nil {
		log.Printf("api: cache hit for %q", req.Query)
		c.JSON(http.StatusOK, cached)
		return
	}

	query := req.Query
	if strings.HasPrefix(query, "http") {
		resolved, ok := s.queryFromURL(c, query)
		if !ok {
			return
		}
		query = resolved
	}

	result := s.runner.Run(ctx, query, req.Context)
	if result.Error != "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error})
		return
	}

	s.queryCache.Put(ctx, req.Query, req.Context, result)
	c.JSON(http.StatusOK, result)
}

// queryFromURL turns an article URL into search keywords. It writes the
// error response itself when the URL yields nothing usable.
func (s *Server) queryFromURL(c *gin.Context, url string) (string, bool) {
	ctx := c.Request.Context()

	text := s.extractor.Extract(ctx, url)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract article text from URL."})
		return "", false
	}

	summary, err := s.summarizer.SummarizeText(ctx, text)
	if err != nil || summary == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not summarize article at URL."})
		return "", false
	}

	keywords, err := s.summarizer.ExtractKeywords(ctx, summary)
	if err != nil || keywords == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not extract keywords from URL."})
		return "", false
	}
	return keywords, true
}

// SummarizeURLRequest is the payload for /summarize/url.
type SummarizeURLRequest struct {
	URL string `json:"url" binding:"required"`
}

// handleSummarizeURL returns a standalone summary of one article.
func (s *Server) handleSummarizeURL(c *gin.Context) {
	var req SummarizeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	text := s.extractor.Extract(ctx, req.URL)
	if text == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not generate summary for the URL."})
		return
	}

	summary, err := s.summarizer.SummarizeText(ctx, text)
	if err != nil || summary == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not generate summary for the URL."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
