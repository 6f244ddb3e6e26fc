package repository

import (
	"context"

	"KCScope/internal/domain/models"
)

// EventPublisher ships evaluation events out of the process.
type EventPublisher interface {
	PublishEvaluation(ctx context.Context, ev *models.EvaluationEvent) error
	Close() error
}

type Metrics interface {
	RecordEvaluation(mode string, matched bool)
	RecordScenario(mode, scenario string)
	RecordWarning(code string)
	RecordHistoryCleared(entries int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
