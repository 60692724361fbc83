package main

import (
	"context"
	"log"
	"net/http"

	"diggi/api"
	"diggi/archive"
	"diggi/cache"
	"diggi/config"
	"diggi/events"
	"diggi/extract"
	"diggi/llm"
	"diggi/media"
	"diggi/newsfetch"
	"diggi/pipeline"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	cfg := config.Load()

	var source pipeline.ArticleSource
	if cfg.SerpAPIKey != "" {
		source = newsfetch.NewSearchClient(cfg.SerpAPIKey, newsfetch.NewReranker(cfg.CohereAPIKey, cfg.RerankModel))
	} else {
		log.Println("SERP_API_KEY not set; serving articles from RSS feeds")
		source = newsfetch.NewFeedSource(cfg.Feeds)
	}

	if cfg.GroqAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY not set; model operations will return their fallback values")
	}
	model := llm.NewClient(cfg)
	extractor := extract.NewExtractor()

	runner := pipeline.NewRunner(source, extractor, model, cfg.MaxArticles)

	ctx := context.Background()
	if store, err := archive.NewStore(ctx, cfg); err != nil {
		log.Printf("Warning: run archiving disabled: %v", err)
	} else if store != nil {
		runner.Archiver = store
		log.Printf("Archiving runs to s3://%s", cfg.S3Bucket)
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Printf("Warning: run events disabled: %v", err)
		} else {
			runner.Publisher = publisher
			defer publisher.Close()
			log.Printf("Publishing run events to %s", cfg.KafkaTopic)
		}
	}

	queryCache := cache.NewQueryCache(cfg.RedisAddr, cfg.RedisPass)

	server := api.NewServer(runner, extractor, model, media.NewTranscriber(model), media.PlainTextReader{}, queryCache)

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /health")
	log.Println("  POST /analyze")
	log.Println("  POST /analyze-file")
	log.Println("  POST /analyze/image")
	log.Println("  POST /summarize/url")
	log.Println("  POST /followup")

	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
