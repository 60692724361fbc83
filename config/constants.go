package config

import "time"

// Pipeline Constants
const (
	// FeaturedCap is the number of articles that receive full credibility scoring.
	// Articles accepted past the cap go to the perspective pool.
	FeaturedCap = 4

	// DefaultMaxArticles is the candidate budget for the lean API path
	DefaultMaxArticles = 6

	// InteractiveMaxArticles is the candidate budget for interactive sessions
	InteractiveMaxArticles = 15

	// FollowupCount is the number of follow-up questions requested per run
	FollowupCount = 5
)

// Prompt Size Constants
//
// These bound prompt size and cost only. They are policy constants, not
// computed values, and changing them changes observable output.
const (
	// SummarizeInputLimit truncates article text before summarization
	SummarizeInputLimit = 3000

	// SnippetLimit truncates each per-article summary during synthesis
	SnippetLimit = 600

	// CombinedInputLimit truncates the joined snippets during synthesis
	CombinedInputLimit = 4000

	// FollowupInputLimit truncates the combined summary for question generation
	FollowupInputLimit = 2000

	// LocationInputLimit truncates text for event-location extraction
	LocationInputLimit = 2000

	// AnswerContextLimit truncates caller-supplied context for follow-up answers
	AnswerContextLimit = 3000
)

// Remote Call Timeouts
const (
	SearchTimeout      = 20 * time.Second
	ExtractTimeout     = 30 * time.Second
	SummarizeTimeout   = 25 * time.Second
	CredibilityTimeout = 10 * time.Second
	SynthesisTimeout   = 30 * time.Second
	FollowupTimeout    = 20 * time.Second
	KeywordTimeout     = 20 * time.Second
	LocationTimeout    = 20 * time.Second
	ImageTimeout       = 30 * time.Second
	PerspectiveTimeout = 30 * time.Second
	TranscribeTimeout  = 60 * time.Second
	RerankTimeout      = 10 * time.Second
)

// Model Constants
const (
	// DefaultChatModel handles every text operation
	DefaultChatModel = "llama-3.1-8b-instant"

	// DefaultVisionModel handles image description
	DefaultVisionModel = "meta-llama/llama-4-scout-17b-16e-instruct"

	// DefaultAudioModel handles transcription
	DefaultAudioModel = "whisper-large-v3"

	// DefaultRerankModel orders candidates by relevance when reranking is enabled
	DefaultRerankModel = "rerank-english-v3.0"

	// DefaultGroqBaseURL is the OpenAI-compatible endpoint for all model calls
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
)

// Cache Constants
const (
	// QueryCacheTTL bounds how long an identical query is answered from cache
	QueryCacheTTL = 10 * time.Minute
)
