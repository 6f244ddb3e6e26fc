// Package history keeps the evaluations of one session, most recent first.
// A History is owned by a single caller and does no locking.
package history

import (
	"time"

	"KCScope/internal/domain/scenario"
)

// DisplayLimit is how many entries a renderer shows by default.
const DisplayLimit = 10

// Entry is an immutable snapshot of one evaluation.
type Entry struct {
	Timestamp time.Time           `json:"timestamp"`
	Mode      scenario.Mode       `json:"mode"`
	Reading   *scenario.Reading   `json:"reading,omitempty"`
	Selection *scenario.Selection `json:"selection,omitempty"`
	// PointsDiff is only set in slope mode.
	PointsDiff *float64         `json:"points_diff,omitempty"`
	Outcome    scenario.Outcome `json:"outcome"`
}

// NewEntry snapshots an input and its outcome. The entry shares no memory
// with out.
func NewEntry(at time.Time, in scenario.Input, out scenario.Outcome) Entry {
	e := Entry{Timestamp: at, Mode: in.Mode, Outcome: out.Clone()}
	switch in.Mode {
	case scenario.ModeNumeric:
		r := in.Reading
		e.Reading = &r
	case scenario.ModeCategorical:
		s := in.Selection
		e.Selection = &s
	case scenario.ModeSlope:
		if out.Selection != nil {
			s := *out.Selection
			e.Selection = &s
		}
		d := in.Slope.PointsDiff
		e.PointsDiff = &d
	}
	return e
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	if e.Reading != nil {
		r := *e.Reading
		e.Reading = &r
	}
	if e.Selection != nil {
		s := *e.Selection
		e.Selection = &s
	}
	if e.PointsDiff != nil {
		d := *e.PointsDiff
		e.PointsDiff = &d
	}
	e.Outcome = e.Outcome.Clone()
	return e
}

// History is an ordered list of entries, newest at index 0.
type History struct {
	entries    []Entry
	maxEntries int
}

// Option configures a History.
type Option func(*History)

// WithMaxEntries bounds how many entries are retained; the oldest fall off.
// Zero or less means unbounded.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		h.maxEntries = n
	}
}

// New returns an empty history.
func New(opts ...Option) *History {
	h := &History{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add puts e at the front.
func (h *History) Add(e Entry) {
	h.entries = append(h.entries, Entry{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
	if h.maxEntries > 0 && len(h.entries) > h.maxEntries {
		h.entries = h.entries[:h.maxEntries]
	}
}

// Len is the number of retained entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns deep copies of all entries, most recent first.
func (h *History) Entries() []Entry {
	return h.Recent(len(h.entries))
}

// Recent returns deep copies of at most n entries, most recent first.
func (h *History) Recent(n int) []Entry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Entry, n)
	for i := range out {
		out[i] = h.entries[i].Clone()
	}
	return out
}

// Since returns entries strictly newer than t, most recent first.
func (h *History) Since(t time.Time) []Entry {
	n := 0
	for n < len(h.entries) && h.entries[n].Timestamp.After(t) {
		n++
	}
	return h.Recent(n)
}

// Clear empties the history and reports how many entries were dropped.
func (h *History) Clear() int {
	n := len(h.entries)
	h.entries = nil
	return n
}
