package api

import (
	"context"

	"diggi/cache"
	"diggi/media"
	"diggi/types"

	"github.com/gin-gonic/gin"
)

// PipelineRunner executes one full analysis run.
type PipelineRunner interface {
	Run(ctx context.Context, query, priorContext string) *types.PipelineResult
}

// Extractor pulls readable text from a URL; "" means failure.
type Extractor interface {
	Extract(ctx context.Context, url string) string
}

// Summarizer is the slice of the model client the controllers call directly.
type Summarizer interface {
	SummarizeText(ctx context.Context, text string) (string, error)
	ExtractKeywords(ctx context.Context, text string) (string, error)
	DescribeImage(ctx context.Context, imageBase64 string) (string, error)
	AnswerFollowup(ctx context.Context, question, priorContext string) string
}

// Transcriber turns an audio/video file into a transcript; "" means failure.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) string
}

// Server holds the collaborators behind the HTTP surface.
type Server struct {
	runner      PipelineRunner
	extractor   Extractor
	summarizer  Summarizer
	transcriber Transcriber
	documents   media.DocumentReader
	queryCache  *cache.QueryCache
}

// NewServer wires the API surface. queryCache may be nil (no memoization).
func NewServer(runner PipelineRunner, extractor Extractor, summarizer Summarizer, transcriber Transcriber, documents media.DocumentReader, queryCache *cache.QueryCache) *Server {
	return &Server{
		runner:      runner,
		extractor:   extractor,
		summarizer:  summarizer,
		transcriber: transcriber,
		documents:   documents,
		queryCache:  queryCache,
	}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	r.GET("/health", handleHealth)
	r.POST("/analyze", s.handleAnalyze)
	r.POST("/analyze-file", s.handleAnalyzeFile)
	r.POST("/analyze/image", s.handleAnalyzeImage)
	r.POST("/summarize/url", s.handleSummarizeURL)
	r.POST("/followup", s.handleFollowup)
	return r
}
