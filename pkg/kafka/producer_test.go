package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishEncodesJSON(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriter(w, "snappy")

	err := p.Publish(context.Background(), "evaluations", []byte("s1"), map[string]int{"n": 1})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "evaluations", w.msgs[0].Topic)
	assert.Equal(t, []byte("s1"), w.msgs[0].Key)
	assert.JSONEq(t, `{"n":1}`, string(w.msgs[0].Value))

	require.NoError(t, p.Publish(context.Background(), "evaluations", nil, "raw"))
	assert.Equal(t, "raw", string(w.msgs[1].Value))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublishWrapsWriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := NewProducerWithWriter(&fakeWriter{err: boom}, "snappy")

	err := p.Publish(context.Background(), "evaluations", nil, "x")
	assert.ErrorIs(t, err, boom)
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	assert.Error(t, err)
}

func TestProducerConfigValidate(t *testing.T) {
	ok := DefaultProducerConfig()
	ok.Brokers = []string{"localhost:9092"}
	require.NoError(t, ok.Validate())

	tests := []struct {
		name string
		mut  func(*ProducerConfig)
	}{
		{"no brokers", func(c *ProducerConfig) { c.Brokers = nil }},
		{"bad acks", func(c *ProducerConfig) { c.RequiredAcks = 2 }},
		{"bad codec", func(c *ProducerConfig) { c.Compression = "brotli" }},
		{"no attempts", func(c *ProducerConfig) { c.MaxAttempts = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ok
			tt.mut(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestOptionsApplyOverDefaults(t *testing.T) {
	cfg := DefaultProducerConfig()
	for _, opt := range []ProducerOption{
		WithBrokers([]string{"k1:9092"}),
		WithClientID("kcscope-test"),
		WithBatching(0, 0),
		WithAsync(false),
	} {
		opt(&cfg)
	}
	assert.Equal(t, "kcscope-test", cfg.ClientID)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.False(t, cfg.Async)
	assert.True(t, cfg.HashByKey)

	w := newWriter(cfg)
	assert.Equal(t, kafka.RequiredAcks(1), w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Equal(t, kafka.Snappy, w.Compression)
}

func TestNewProducerRejectsUnknownCompression(t *testing.T) {
	_, err := NewProducer(WithBrokers([]string{"k1:9092"}), WithCompression("brotli"))
	assert.Error(t, err)
}
