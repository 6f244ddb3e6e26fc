package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KCScope/internal/domain/models"
	"KCScope/internal/service/session"
	xhttp "KCScope/pkg/http"
	applogger "KCScope/pkg/logger"
)

type closingEvents struct {
	closed bool
	err    error
}

func (e *closingEvents) PublishEvaluation(context.Context, *models.EvaluationEvent) error { return nil }
func (e *closingEvents) Close() error {
	e.closed = true
	return e.err
}

func newApp(events *closingEvents) *App {
	srv := xhttp.NewServer(nil,
		xhttp.WithHost("127.0.0.1"),
		xhttp.WithPort(0),
		xhttp.WithTimeouts(time.Second, time.Second, time.Second),
	)
	return New(applogger.Nop(), srv, session.NewStore(session.Config{}), events)
}

func TestRunContextShutsDownOnCancel(t *testing.T) {
	events := &closingEvents{}
	app := newApp(events)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunContext(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.True(t, events.closed)
}

func TestShutdownReportsPublisherError(t *testing.T) {
	events := &closingEvents{err: errors.New("flush failed")}
	app := newApp(events)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := app.RunContext(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush failed")
}
