package scenario

import (
	"fmt"
	"math"
)

// Warning codes reported by ValidateReading.
const (
	WarnNonFinite      = "NON_FINITE"
	WarnLowerNotBelow  = "KC_LOWER_NOT_BELOW_MIDDLE"
	WarnMiddleNotBelow = "KC_MIDDLE_NOT_BELOW_UPPER"
	WarnZeroVWAP       = "VWAP_ZERO"
)

// Warning is a non-fatal problem with a reading. Classification still runs
// but the result may not mean much.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateReading checks the band ordering and vwap invariants. Negative
// prices are accepted.
func ValidateReading(r Reading) []Warning {
	var ws []Warning
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"price", r.Price},
		{"vwap", r.VWAP},
		{"kc_upper", r.KCUpper},
		{"kc_middle", r.KCMiddle},
		{"kc_lower", r.KCLower},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			ws = append(ws, Warning{Code: WarnNonFinite, Message: fmt.Sprintf("%s is not a finite number", f.name)})
		}
	}
	if !(r.KCLower < r.KCMiddle) {
		ws = append(ws, Warning{
			Code:    WarnLowerNotBelow,
			Message: fmt.Sprintf("kc_lower (%g) must be below kc_middle (%g)", r.KCLower, r.KCMiddle),
		})
	}
	if !(r.KCMiddle < r.KCUpper) {
		ws = append(ws, Warning{
			Code:    WarnMiddleNotBelow,
			Message: fmt.Sprintf("kc_middle (%g) must be below kc_upper (%g)", r.KCMiddle, r.KCUpper),
		})
	}
	if r.VWAP == 0 {
		ws = append(ws, Warning{Code: WarnZeroVWAP, Message: "vwap must not be zero"})
	}
	return ws
}
