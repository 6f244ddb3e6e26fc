package repository

import (
	"context"
	"fmt"

	"KCScope/internal/domain/models"
	domrepo "KCScope/internal/domain/repository"
	pkgkafka "KCScope/pkg/kafka"
)

// Publisher is the subset of *pkgkafka.Producer used here.
type Publisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// KafkaEventPublisher publishes evaluation events to a topic, keyed by
// session id.
type KafkaEventPublisher struct {
	producer Publisher
	topic    string
}

func NewKafkaEventPublisher(p Publisher, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: p, topic: topic}
}

func (p *KafkaEventPublisher) PublishEvaluation(ctx context.Context, ev *models.EvaluationEvent) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(ev.SessionID), ev); err != nil {
		return fmt.Errorf("publish evaluation: %w", err)
	}
	return nil
}

func (p *KafkaEventPublisher) Close() error { return p.producer.Close() }

// NoopEventPublisher drops events. Used when the event stream is disabled.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishEvaluation(context.Context, *models.EvaluationEvent) error {
	return nil
}

func (NoopEventPublisher) Close() error { return nil }

var (
	_ domrepo.EventPublisher = (*KafkaEventPublisher)(nil)
	_ domrepo.EventPublisher = NoopEventPublisher{}
	_ Publisher              = (*pkgkafka.Producer)(nil)
)
