package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"KCScope/internal/domain/repository"
	"KCScope/internal/service/session"
	xhttp "KCScope/pkg/http"
	applogger "KCScope/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	logger     *applogger.Logger
	httpServer *xhttp.Server
	sessions   *session.Store
	events     repository.EventPublisher
}

// New creates a new App instance with all dependencies.
func New(
	l *applogger.Logger,
	srv *xhttp.Server,
	sessions *session.Store,
	events repository.EventPublisher,
) *App {
	return &App{
		logger:     l,
		httpServer: srv,
		sessions:   sessions,
		events:     events,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and blocks until ctx is done, then
// shuts everything down.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	a.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	var errs []error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		errs = append(errs, err)
	}

	// In-flight requests are done; flush pending events.
	if err := a.events.Close(); err != nil {
		a.logger.Warn("event publisher close error", applogger.Error(err))
		errs = append(errs, err)
	}

	if err := a.sessions.Close(); err != nil {
		a.logger.Warn("session store close error", applogger.Error(err))
	}

	a.logger.Info("shutdown complete")
	return errors.Join(errs...)
}
