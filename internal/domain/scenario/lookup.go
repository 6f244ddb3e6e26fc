package scenario

import "math"

// PriceVsVWAP is the categorical price-to-VWAP selection.
type PriceVsVWAP string

const (
	PriceAboveVWAP PriceVsVWAP = "Above VWAP"
	PriceAtVWAP    PriceVsVWAP = "At VWAP"
	PriceBelowVWAP PriceVsVWAP = "Below VWAP"
)

// Slope is the VWAP trend direction.
type Slope string

const (
	Rising  Slope = "Rising"
	Falling Slope = "Falling"
)

// KCZone is the categorical Keltner Channel selection.
type KCZone string

const (
	ZoneAboveUpper         KCZone = "Above KC Upper"
	ZoneBetweenMiddleUpper KCZone = "Between KC Middle & Upper"
	ZoneNearVWAP           KCZone = "Near VWAP"
	ZoneNearMiddle         KCZone = "At or Near KC Middle"
	ZoneBetweenMiddleLower KCZone = "Between KC Middle & Lower"
	ZoneBelowLower         KCZone = "Below KC Lower"
)

// Distance is the categorical distance of price from VWAP.
type Distance string

const (
	Large    Distance = "Large"
	Moderate Distance = "Moderate"
	Small    Distance = "Small"
	NoDist   Distance = "N/A"
)

// NoInterpretation is reported for any selection missing from the table.
const NoInterpretation = "No interpretation found for this combination."

// Selection is the key of the categorical table.
type Selection struct {
	PriceVWAP  PriceVsVWAP `json:"price_vwap"`
	VWAPSlope  Slope       `json:"vwap_slope"`
	KCPosition KCZone      `json:"kc_position"`
	Distance   Distance    `json:"distance"`
}

// Interpretation is a table value.
type Interpretation struct {
	Interpretation string `json:"interpretation"`
	Action         string `json:"action"`
}

// Table maps selections to interpretations. It is deliberately partial.
type Table map[Selection]Interpretation

// Get returns the interpretation for s and whether s is mapped.
func (t Table) Get(s Selection) (Interpretation, bool) {
	in, ok := t[s]
	return in, ok
}

// DefaultTable returns a fresh copy of the built-in eleven combinations.
func DefaultTable() Table {
	t := make(Table, len(defaultEntries))
	for _, e := range defaultEntries {
		t[e.sel] = e.in
	}
	return t
}

// TableEntry pairs a selection with its interpretation, for listing.
type TableEntry struct {
	Selection
	Interpretation
}

// Entries lists the table in the built-in order first, then any extra
// selections in unspecified order.
func (t Table) Entries() []TableEntry {
	out := make([]TableEntry, 0, len(t))
	seen := make(map[Selection]bool, len(t))
	for _, e := range defaultEntries {
		if in, ok := t[e.sel]; ok {
			out = append(out, TableEntry{Selection: e.sel, Interpretation: in})
			seen[e.sel] = true
		}
	}
	for s, in := range t {
		if !seen[s] {
			out = append(out, TableEntry{Selection: s, Interpretation: in})
		}
	}
	return out
}

var defaultEntries = []struct {
	sel Selection
	in  Interpretation
}{
	{Selection{PriceAboveVWAP, Rising, ZoneAboveUpper, Large},
		Interpretation{"Overbought, strong momentum but likely overextended", "Take profits, consider partial exit"}},
	{Selection{PriceAboveVWAP, Rising, ZoneBetweenMiddleUpper, Moderate},
		Interpretation{"Healthy uptrend, price supported by volume", "Buy on pullbacks toward VWAP"}},
	{Selection{PriceAboveVWAP, Rising, ZoneNearVWAP, Small},
		Interpretation{"Early stage of uptrend", "Consider entering longs"}},
	{Selection{PriceAboveVWAP, Falling, ZoneAboveUpper, Large},
		Interpretation{"Weakening volume despite price strength", "Be cautious, reduce longs"}},
	{Selection{PriceAboveVWAP, Falling, ZoneBetweenMiddleUpper, Moderate},
		Interpretation{"Possible trend reversal", "Wait for confirmation, tighten stops"}},
	{Selection{PriceAtVWAP, Rising, ZoneNearMiddle, NoDist},
		Interpretation{"VWAP is support, volume confirming", "Buy with confirmation"}},
	{Selection{PriceAtVWAP, Falling, ZoneNearMiddle, NoDist},
		Interpretation{"VWAP support weakening", "Watch for breakdown, be cautious"}},
	{Selection{PriceBelowVWAP, Falling, ZoneBelowLower, Large},
		Interpretation{"Strong bearish trend, price oversold", "Consider shorts, wait for pullbacks"}},
	{Selection{PriceBelowVWAP, Falling, ZoneBetweenMiddleLower, Moderate},
		Interpretation{"Bearish but not oversold", "Short or wait for confirmation"}},
	{Selection{PriceBelowVWAP, Rising, ZoneBelowLower, Large},
		Interpretation{"Possible early bounce attempt", "Watch closely for reversal"}},
	{Selection{PriceBelowVWAP, Rising, ZoneBetweenMiddleLower, Moderate},
		Interpretation{"Potential pullback in bearish trend", "Wait for bounce or confirmation"}},
}

// DistanceThresholds are the inclusive lower bounds of Large and Moderate.
type DistanceThresholds struct {
	Large    float64 `json:"large" yaml:"large"`
	Moderate float64 `json:"moderate" yaml:"moderate"`
}

// DefaultDistanceThresholds are measured in price points.
var DefaultDistanceThresholds = DistanceThresholds{Large: 5, Moderate: 2}

// Label buckets an absolute points difference.
func (d DistanceThresholds) Label(diff float64) Distance {
	switch {
	case diff >= d.Large:
		return Large
	case diff >= d.Moderate:
		return Moderate
	case diff > 0:
		return Small
	default:
		return NoDist
	}
}

// DistanceLabel buckets diff with the default thresholds.
func DistanceLabel(diff float64) Distance {
	return DefaultDistanceThresholds.Label(diff)
}

// SlopeInput is the slope-aware variant: the distance label is derived
// from the raw points difference instead of being selected.
type SlopeInput struct {
	PriceVWAP  PriceVsVWAP `json:"price_vwap"`
	VWAPSlope  Slope       `json:"vwap_slope"`
	KCPosition KCZone      `json:"kc_position"`
	PointsDiff float64     `json:"points_diff"`
}

// Resolve turns a slope input into a table key.
func (in SlopeInput) Resolve(d DistanceThresholds) Selection {
	return Selection{
		PriceVWAP:  in.PriceVWAP,
		VWAPSlope:  in.VWAPSlope,
		KCPosition: in.KCPosition,
		Distance:   d.Label(math.Abs(in.PointsDiff)),
	}
}
