package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds every credential and tunable the service reads from the
// environment. It is loaded once at process start, immutable afterwards, and
// passed into each collaborator at construction so tests can inject their own.
type Config struct {
	// Port the API listens on
	Port string

	// SerpAPIKey enables the search-backed article source
	SerpAPIKey string

	// GroqAPIKey enables every model call; absent, all operations degrade
	GroqAPIKey  string
	GroqBaseURL string
	ChatModel   string
	VisionModel string
	AudioModel  string

	// CohereAPIKey enables candidate reranking
	CohereAPIKey string
	RerankModel  string

	// MaxArticles is the per-run candidate budget (lean API default 6,
	// interactive sessions typically set 15)
	MaxArticles int

	// Feeds are RSS/Atom URLs used as the article source when no search key
	// is configured
	Feeds []string

	// RedisAddr enables memoization of identical queries; empty disables it
	RedisAddr string
	RedisPass string

	// S3Bucket enables archiving of completed runs; empty disables it
	S3Bucket       string
	S3Region       string
	S3Prefix       string
	S3UsePathStyle bool

	// KafkaBrokers enables run-completed events; empty disables them
	KafkaBrokers []string
	KafkaTopic   string
}

// Load builds a Config from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		Port:        GetEnvOrDefault("PORT", "8080"),
		SerpAPIKey:  strings.TrimSpace(os.Getenv("SERP_API_KEY")),
		GroqAPIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqBaseURL: GetEnvOrDefault("GROQ_BASE_URL", DefaultGroqBaseURL),
		ChatModel:   GetEnvOrDefault("CHAT_MODEL", DefaultChatModel),
		VisionModel: GetEnvOrDefault("VISION_MODEL", DefaultVisionModel),
		AudioModel:  GetEnvOrDefault("AUDIO_MODEL", DefaultAudioModel),

		CohereAPIKey: strings.TrimSpace(os.Getenv("COHERE_API_KEY")),
		RerankModel:  GetEnvOrDefault("RERANK_MODEL", DefaultRerankModel),

		MaxArticles: getEnvInt("MAX_ARTICLES", DefaultMaxArticles),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass: os.Getenv("REDIS_PASS"),

		S3Bucket:       strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Prefix:       strings.Trim(strings.TrimSpace(os.Getenv("S3_PREFIX")), "/"),
		S3UsePathStyle: strings.EqualFold(os.Getenv("S3_USE_PATH_STYLE"), "true"),

		KafkaTopic: GetEnvOrDefault("KAFKA_TOPIC", "diggi.runs"),
	}

	if v := strings.TrimSpace(os.Getenv("NEWS_FEEDS")); v != "" {
		cfg.Feeds = splitAndTrim(v)
	}
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		cfg.KafkaBrokers = splitAndTrim(v)
	}

	return cfg
}

// GetEnvOrDefault returns the environment value or a fallback when unset.
func GetEnvOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
