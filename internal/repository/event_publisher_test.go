package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KCScope/internal/domain/history"
	"KCScope/internal/domain/models"
	"KCScope/internal/domain/scenario"
)

type recordingPublisher struct {
	topic string
	key   []byte
	value interface{}
	err   error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, key []byte, value interface{}) error {
	p.topic, p.key, p.value = topic, key, value
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestKafkaEventPublisherKeysBySession(t *testing.T) {
	rp := &recordingPublisher{}
	pub := NewKafkaEventPublisher(rp, "kcscope.evaluations")

	r := scenario.Reading{Price: 103, VWAP: 100, KCUpper: 102, KCMiddle: 100, KCLower: 98}
	in := scenario.NumericInput(r)
	ev := &models.EvaluationEvent{
		SessionID: "desk-1",
		Recorded:  true,
		Entry:     history.NewEntry(time.Unix(0, 0).UTC(), in, scenario.NewClassifier().Numeric(r)),
		EmittedAt: time.Unix(1, 0).UTC(),
	}
	require.NoError(t, pub.PublishEvaluation(context.Background(), ev))

	assert.Equal(t, "kcscope.evaluations", rp.topic)
	assert.Equal(t, []byte("desk-1"), rp.key)

	b, err := json.Marshal(rp.value)
	require.NoError(t, err)
	assert.Contains(t, string(b), scenario.VeryOverextendedBreakout)
}

func TestKafkaEventPublisherWrapsError(t *testing.T) {
	boom := errors.New("down")
	pub := NewKafkaEventPublisher(&recordingPublisher{err: boom}, "t")
	err := pub.PublishEvaluation(context.Background(), &models.EvaluationEvent{})
	assert.ErrorIs(t, err, boom)
}

func TestNoopEventPublisher(t *testing.T) {
	var pub NoopEventPublisher
	assert.NoError(t, pub.PublishEvaluation(context.Background(), &models.EvaluationEvent{}))
	assert.NoError(t, pub.Close())
}
