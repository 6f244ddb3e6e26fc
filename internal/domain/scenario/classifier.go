// Package scenario classifies VWAP and Keltner Channel readings into named
// intraday trading scenarios.
//
// Three input modes share one Classifier:
//
//   - numeric: raw price and band levels, run through a total decision tree
//   - categorical: pre-selected labels, looked up in a partial table
//   - slope: categorical labels plus a raw points difference that is
//     bucketed into a distance label before the lookup
package scenario

import "fmt"

// Mode selects how an Input is interpreted.
type Mode string

const (
	ModeNumeric     Mode = "numeric"
	ModeCategorical Mode = "categorical"
	ModeSlope       Mode = "slope"
)

// ParseMode accepts the lowercase mode names.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNumeric, ModeCategorical, ModeSlope:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Input carries exactly one of Reading, Selection or Slope, matching Mode.
type Input struct {
	Mode      Mode
	Reading   Reading
	Selection Selection
	Slope     SlopeInput
}

// NumericInput wraps a reading.
func NumericInput(r Reading) Input { return Input{Mode: ModeNumeric, Reading: r} }

// CategoricalInput wraps a selection.
func CategoricalInput(s Selection) Input { return Input{Mode: ModeCategorical, Selection: s} }

// SlopeAwareInput wraps a slope input.
func SlopeAwareInput(s SlopeInput) Input { return Input{Mode: ModeSlope, Slope: s} }

// Outcome is the unified classifier output. Matched is false only for
// lookup modes whose key is not in the table.
type Outcome struct {
	Mode    Mode `json:"mode"`
	Matched bool `json:"matched"`
	Result

	// numeric mode
	Positioning *Positioning `json:"positioning,omitempty"`
	Warnings    []Warning    `json:"warnings,omitempty"`

	// lookup modes
	Selection *Selection `json:"selection,omitempty"`
}

// Clone returns a deep copy of o that shares no pointers or slices with it.
func (o Outcome) Clone() Outcome {
	if o.Positioning != nil {
		p := *o.Positioning
		o.Positioning = &p
	}
	if o.Selection != nil {
		s := *o.Selection
		o.Selection = &s
	}
	if o.Warnings != nil {
		o.Warnings = append([]Warning(nil), o.Warnings...)
	}
	return o
}

// Classifier evaluates inputs in any mode.
type Classifier struct {
	table     Table
	distances DistanceThresholds
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithTable replaces the categorical table.
func WithTable(t Table) Option {
	return func(c *Classifier) {
		c.table = t
	}
}

// WithDistanceThresholds replaces the slope-mode distance buckets.
func WithDistanceThresholds(d DistanceThresholds) Option {
	return func(c *Classifier) {
		c.distances = d
	}
}

// NewClassifier builds a classifier with the built-in table and distance
// thresholds unless overridden.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		table:     DefaultTable(),
		distances: DefaultDistanceThresholds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the categorical table in use.
func (c *Classifier) Table() Table { return c.table }

// Distances returns the slope-mode thresholds in use.
func (c *Classifier) Distances() DistanceThresholds { return c.distances }

// Evaluate dispatches on in.Mode. An unknown mode is the only error.
func (c *Classifier) Evaluate(in Input) (Outcome, error) {
	switch in.Mode {
	case ModeNumeric:
		return c.Numeric(in.Reading), nil
	case ModeCategorical:
		return c.Lookup(ModeCategorical, in.Selection), nil
	case ModeSlope:
		return c.Lookup(ModeSlope, in.Slope.Resolve(c.distances)), nil
	default:
		return Outcome{}, fmt.Errorf("evaluate: unknown mode %q", in.Mode)
	}
}

// Numeric classifies a reading and attaches its validation warnings.
func (c *Classifier) Numeric(r Reading) Outcome {
	p := Locate(r)
	return Outcome{
		Mode:        ModeNumeric,
		Matched:     true,
		Result:      classifyPositioning(p),
		Positioning: &p,
		Warnings:    ValidateReading(r),
	}
}

// Lookup resolves a selection against the table.
func (c *Classifier) Lookup(mode Mode, s Selection) Outcome {
	out := Outcome{Mode: mode, Selection: &s}
	in, ok := c.table.Get(s)
	if !ok {
		out.Scenario = NoInterpretation
		return out
	}
	out.Matched = true
	out.Scenario = in.Interpretation
	out.TradeIdea = in.Action
	return out
}
