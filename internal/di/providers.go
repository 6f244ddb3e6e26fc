package di

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"KCScope/internal/domain/repository"
	"KCScope/internal/domain/scenario"
	"KCScope/internal/handler/api"
	internalrepo "KCScope/internal/repository"
	"KCScope/internal/service/ratelimit"
	"KCScope/internal/service/session"
	"KCScope/internal/usecase"
	"KCScope/pkg/config"
	xhttp "KCScope/pkg/http"
	"KCScope/pkg/http/middleware"
	pkgkafka "KCScope/pkg/kafka"
	applogger "KCScope/pkg/logger"
	"KCScope/pkg/metrics"
	"KCScope/pkg/server"
)

// ProvideLogger builds the application logger from the logging section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideRegisterer returns the registry /metrics is served from. The Kafka
// producer registers on the default registry too.
func ProvideRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg prometheus.Registerer) repository.Metrics {
	return metrics.New(reg)
}

// ProvideClassifier applies the configured distance thresholds.
func ProvideClassifier(cfg *config.Config) *scenario.Classifier {
	return scenario.NewClassifier(scenario.WithDistanceThresholds(cfg.Classifier.Distance))
}

// ProvideEventPublisher returns a Kafka publisher when events are enabled
// and a no-op otherwise.
func ProvideEventPublisher(cfg *config.Config, l *applogger.Logger) (repository.EventPublisher, error) {
	if !cfg.Events.Enabled {
		return internalrepo.NoopEventPublisher{}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithClientID(cfg.Events.ClientID),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Events.MaxAttempts),
		pkgkafka.WithBatching(cfg.Events.BatchSize, cfg.Events.Linger),
		pkgkafka.WithTimeouts(cfg.Events.WriteTimeout, cfg.Events.ReadTimeout),
		pkgkafka.WithAsync(cfg.Events.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	l.Info("evaluation events enabled",
		applogger.Strings("brokers", cfg.Events.Brokers),
		applogger.String("topic", cfg.Events.Topic),
	)
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Events.Topic), nil
}

// ProvideSessionStore creates the in-memory per-client history store.
func ProvideSessionStore(cfg *config.Config) *session.Store {
	return session.NewStore(session.Config{
		IdleTTL:     cfg.Session.IdleTTL,
		MaxSessions: cfg.Session.MaxSessions,
		MaxEntries:  cfg.Session.MaxEntries,
		Sweep:       cfg.Session.Sweep,
	})
}

// ProvideInterpreter creates the evaluation use case.
func ProvideInterpreter(
	c *scenario.Classifier,
	m repository.Metrics,
	events repository.EventPublisher,
	l *applogger.Logger,
) *usecase.Interpreter {
	return usecase.NewInterpreter(c, m, events, l)
}

// ProvideHandler creates the scenario HTTP handler.
func ProvideHandler(l *applogger.Logger, interp *usecase.Interpreter, sessions *session.Store) xhttp.Handler {
	return api.NewScenarioEchoHandler(l, interp, sessions)
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config) middleware.Allower {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.MaxKeys)
}

// ProvideHTTPServer builds the Echo server around the handler.
func ProvideHTTPServer(
	cfg *config.Config,
	h xhttp.Handler,
	l *applogger.Logger,
	limiter middleware.Allower,
	reg prometheus.Registerer,
) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(l),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(cfg.Metrics.Path, reg, prometheus.DefaultGatherer))
	}
	if limiter != nil {
		opts = append(opts, xhttp.WithRateLimit(limiter))
	}
	return xhttp.NewServer(h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(
	l *applogger.Logger,
	srv *xhttp.Server,
	sessions *session.Store,
	events repository.EventPublisher,
) *server.App {
	return server.New(l, srv, sessions, events)
}
