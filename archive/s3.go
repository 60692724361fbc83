package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	appconfig "diggi/config"
	"diggi/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store archives completed pipeline runs as JSON records in S3.
type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewStore builds an S3-backed archive using the default AWS config chain.
// Returns nil (archiving disabled) when no bucket is configured.
func NewStore(ctx context.Context, cfg appconfig.Config) (*Store, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.S3Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.S3Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	prefix := cfg.S3Prefix
	if prefix != "" {
		prefix += "/"
	}
	return &Store{client: client, bucket: cfg.S3Bucket, prefix: prefix}, nil
}

// runRecord is the archived shape of one run.
type runRecord struct {
	Query       string                    `json:"query"`
	CompletedAt time.Time                 `json:"completed_at"`
	Summary     string                    `json:"summary"`
	Articles    []types.ProcessedArticle  `json:"articles"`
	Perspectives []types.PerspectiveRecord `json:"perspectives"`
	Followups   []string                  `json:"followup_questions"`
}

// Archive writes the result under runs/<timestamp>-<query hash>.json.
func (s *Store) Archive(ctx context.Context, query string, result *types.PipelineResult) error {
	if s == nil || result == nil {
		return nil
	}

	now := time.Now().UTC()
	record := runRecord{
		Query:        query,
		CompletedAt:  now,
		Summary:      result.Summary,
		Articles:     result.Articles,
		Perspectives: result.Perspectives,
		Followups:    result.Followups,
	}

	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%sruns/%s-%s.json", s.prefix, now.Format("20060102T150405"), types.GenerateID(query))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(b),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
