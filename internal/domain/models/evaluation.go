package models

import (
	"time"

	"KCScope/internal/domain/history"
)

// EvaluationEvent is the wire form of one evaluation on the event stream.
type EvaluationEvent struct {
	SessionID string        `json:"session_id"`
	Recorded  bool          `json:"recorded"`
	Entry     history.Entry `json:"entry"`
	EmittedAt time.Time     `json:"emitted_at"`
}
