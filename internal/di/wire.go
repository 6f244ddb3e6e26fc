//go:build wireinject
// +build wireinject

package di

import (
	"KCScope/pkg/config"
	"KCScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideRegisterer,
		ProvideMetrics,

		// Domain and infrastructure
		ProvideClassifier,
		ProvideEventPublisher,
		ProvideSessionStore,

		// Use cases
		ProvideInterpreter,

		// Transport
		ProvideHandler,
		ProvideRateLimiter,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
