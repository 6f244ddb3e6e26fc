package usecase

import (
	"context"
	"fmt"
	"time"

	"KCScope/internal/domain/history"
	"KCScope/internal/domain/models"
	domrepo "KCScope/internal/domain/repository"
	"KCScope/internal/domain/scenario"
	xlogger "KCScope/pkg/logger"
)

// Interpreter runs one evaluation for a session: classify, record, report.
// The classifier stays pure; every side effect happens here.
type Interpreter struct {
	classifier *scenario.Classifier
	metrics    domrepo.Metrics
	events     domrepo.EventPublisher
	logger     *xlogger.Logger
	now        func() time.Time
}

func NewInterpreter(c *scenario.Classifier, metrics domrepo.Metrics, events domrepo.EventPublisher, logger *xlogger.Logger) *Interpreter {
	return &Interpreter{
		classifier: c,
		metrics:    metrics,
		events:     events,
		logger:     logger,
		now:        time.Now,
	}
}

// Classifier exposes the classifier, e.g. for listing the table.
func (i *Interpreter) Classifier() *scenario.Classifier { return i.classifier }

// Interpret classifies in and, when the outcome matched, prepends it to h.
// Unmatched lookups are returned but not recorded. The only error is an
// unknown mode; event publishing failures are logged.
func (i *Interpreter) Interpret(ctx context.Context, sessionID string, h *history.History, in scenario.Input) (scenario.Outcome, error) {
	start := time.Now()
	out, err := i.classifier.Evaluate(in)
	if err != nil {
		i.metrics.RecordError("evaluate")
		return scenario.Outcome{}, fmt.Errorf("interpret: %w", err)
	}
	i.metrics.RecordLatency("classify", time.Since(start).Seconds())

	mode := string(out.Mode)
	i.metrics.RecordEvaluation(mode, out.Matched)
	for _, w := range out.Warnings {
		i.metrics.RecordWarning(w.Code)
		i.logger.Warn("reading failed validation",
			xlogger.String("session", sessionID),
			xlogger.String("code", w.Code),
			xlogger.String("detail", w.Message),
		)
	}

	entry := history.NewEntry(i.now(), in, out)
	if out.Matched {
		i.metrics.RecordScenario(mode, out.Scenario)
		h.Add(entry)
	} else {
		i.logger.Info("no interpretation found",
			xlogger.String("session", sessionID),
			xlogger.String("mode", mode),
			xlogger.Any("selection", out.Selection),
		)
	}

	fields := []xlogger.Field{
		xlogger.String("session", sessionID),
		xlogger.String("mode", mode),
		xlogger.Bool("matched", out.Matched),
		xlogger.String("scenario", out.Scenario),
	}
	if p := out.Positioning; p != nil {
		fields = append(fields, xlogger.Float64("deviation_pct", p.DeviationPct))
	}
	i.logger.Debug("evaluated", fields...)

	ev := &models.EvaluationEvent{
		SessionID: sessionID,
		Recorded:  out.Matched,
		Entry:     entry.Clone(),
		EmittedAt: i.now(),
	}
	if err := i.events.PublishEvaluation(ctx, ev); err != nil {
		i.metrics.RecordError("publish")
		i.logger.Error("publish evaluation failed", xlogger.String("session", sessionID), xlogger.Error(err))
	}

	return out, nil
}

// Clear empties h and reports how many entries were dropped.
func (i *Interpreter) Clear(sessionID string, h *history.History) int {
	n := h.Clear()
	i.metrics.RecordHistoryCleared(n)
	i.logger.Info("history cleared", xlogger.String("session", sessionID), xlogger.Int("entries", n))
	return n
}
