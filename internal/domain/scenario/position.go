package scenario

import (
	"encoding/json"
	"math"
)

// VWAPPosition is where price sits relative to VWAP.
type VWAPPosition string

const (
	AboveVWAP VWAPPosition = "Above VWAP"
	AtVWAP    VWAPPosition = "At VWAP"
	BelowVWAP VWAPPosition = "Below VWAP"

	VWAPUndetermined VWAPPosition = "Undetermined"
)

// KCPosition is where price sits relative to the Keltner Channel bands.
type KCPosition string

const (
	AboveUpper         KCPosition = "Above Upper Band"
	AtUpper            KCPosition = "At Upper Band"
	BetweenUpperMiddle KCPosition = "Between Upper & Middle"
	AtMiddle           KCPosition = "At Middle Band"
	BetweenMiddleLower KCPosition = "Between Middle & Lower"
	AtLower            KCPosition = "At Lower Band"
	BelowLower         KCPosition = "Below Lower Band"

	KCUndetermined KCPosition = "Undetermined"
)

// DeviationLabel buckets the percentage distance between price and VWAP.
type DeviationLabel string

const (
	Neutral   DeviationLabel = "Neutral (<0.3%)"
	Slight    DeviationLabel = "Slight (0.3-0.7%)"
	Stretched DeviationLabel = "Stretched (0.7-1.5%)"
	Extreme   DeviationLabel = "Extreme (>1.5%)"
)

// Deviation bucket upper bounds, exclusive.
const (
	NeutralBelow   = 0.3
	SlightBelow    = 0.7
	StretchedBelow = 1.5
)

// Reading is one snapshot of the indicator levels.
type Reading struct {
	Price    float64 `json:"price"`
	VWAP     float64 `json:"vwap"`
	KCUpper  float64 `json:"kc_upper"`
	KCMiddle float64 `json:"kc_middle"`
	KCLower  float64 `json:"kc_lower"`
}

// Positioning holds the fields derived from a Reading.
type Positioning struct {
	VWAP         VWAPPosition   `json:"vwap_position"`
	KC           KCPosition     `json:"kc_position"`
	DeviationPct float64        `json:"deviation_pct"`
	Deviation    DeviationLabel `json:"deviation_label"`
}

// PositionVsVWAP reports the sign of price - vwap.
func PositionVsVWAP(price, vwap float64) VWAPPosition {
	switch {
	case price > vwap:
		return AboveVWAP
	case price < vwap:
		return BelowVWAP
	case price == vwap:
		return AtVWAP
	default:
		return VWAPUndetermined
	}
}

// PositionVsKC places price against the three bands. Equality with a band is
// reported separately from the strict ranges around it.
func PositionVsKC(price, upper, middle, lower float64) KCPosition {
	switch {
	case price > upper:
		return AboveUpper
	case price == upper:
		return AtUpper
	case price > middle:
		return BetweenUpperMiddle
	case price == middle:
		return AtMiddle
	case price > lower:
		return BetweenMiddleLower
	case price == lower:
		return AtLower
	case price < lower:
		return BelowLower
	default:
		return KCUndetermined
	}
}

// DeviationPct is |price - vwap| / vwap * 100. A zero vwap yields Inf or NaN.
func DeviationPct(price, vwap float64) float64 {
	return math.Abs(price-vwap) / vwap * 100
}

// LabelDeviation buckets a deviation percentage. Boundaries belong to the
// higher bucket.
func LabelDeviation(pct float64) DeviationLabel {
	switch {
	case pct < NeutralBelow:
		return Neutral
	case pct < SlightBelow:
		return Slight
	case pct < StretchedBelow:
		return Stretched
	default:
		return Extreme
	}
}

// Locate derives all positioning fields for a reading.
func Locate(r Reading) Positioning {
	pct := DeviationPct(r.Price, r.VWAP)
	return Positioning{
		VWAP:         PositionVsVWAP(r.Price, r.VWAP),
		KC:           PositionVsKC(r.Price, r.KCUpper, r.KCMiddle, r.KCLower),
		DeviationPct: pct,
		Deviation:    LabelDeviation(pct),
	}
}

// MarshalJSON writes a non-finite deviation (zero vwap) as null.
func (p Positioning) MarshalJSON() ([]byte, error) {
	type wire struct {
		VWAP         VWAPPosition   `json:"vwap_position"`
		KC           KCPosition     `json:"kc_position"`
		DeviationPct *float64       `json:"deviation_pct"`
		Deviation    DeviationLabel `json:"deviation_label"`
	}
	w := wire{VWAP: p.VWAP, KC: p.KC, Deviation: p.Deviation}
	if !math.IsNaN(p.DeviationPct) && !math.IsInf(p.DeviationPct, 0) {
		pct := p.DeviationPct
		w.DeviationPct = &pct
	}
	return json.Marshal(w)
}
