package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// RunEvent announces a completed pipeline run to downstream consumers.
type RunEvent struct {
	Query        string    `json:"query"`
	ArticleCount int       `json:"article_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Publisher emits run-completed events to a Kafka topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a sync producer to the given brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &Publisher{producer: producer, topic: topic}, nil
}

// Publish sends one run-completed event.
func (p *Publisher) Publish(query string, articleCount int) error {
	event := RunEvent{
		Query:        query,
		ArticleCount: articleCount,
		CompletedAt:  time.Now().UTC(),
	}
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(b),
	})
	return err
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
