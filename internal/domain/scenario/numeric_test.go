package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bands used by most cases: upper 102, middle 100, lower 98
func reading(price, vwap float64) Reading {
	return Reading{Price: price, VWAP: vwap, KCUpper: 102, KCMiddle: 100, KCLower: 98}
}

func TestClassifyDecisionTree(t *testing.T) {
	tests := []struct {
		name     string
		in       Reading
		scenario string
		risk     RiskLevel
	}{
		// upper band, above vwap, escalating with deviation
		{"breakout extreme", reading(103, 100), VeryOverextendedBreakout, HighRisk},
		{"breakout stretched", reading(103, 102), OverextendedBreakout, MediumRisk},
		{"breakout slight", reading(103, 102.5), BullishBreakout, MediumRisk},
		{"at upper neutral", reading(102, 101.9), BullishBreakout, MediumRisk},
		{"breakout below vwap", reading(103, 104), SuspectBreakout, HighRisk},
		{"at upper below vwap", reading(102, 110), SuspectBreakout, HighRisk},
		{"breakout at vwap", reading(103, 103), IndecisionAtHighs, MediumRisk},

		// lower band mirror
		{"breakdown extreme", reading(97, 100), VeryOverextendedBreakdown, HighRisk},
		{"breakdown stretched", reading(97, 98), OverextendedBreakdown, MediumRisk},
		{"breakdown slight", reading(97, 97.5), BearishBreakdown, MediumRisk},
		{"at lower below vwap", reading(98, 98.1), BearishBreakdown, MediumRisk},
		{"breakdown above vwap", reading(97, 96), SuspectBreakdown, HighRisk},
		{"breakdown at vwap", reading(97, 97), IndecisionAtLows, MediumRisk},

		// middle band
		{"middle above vwap", reading(100, 99), TestingSupport, LowRisk},
		{"middle below vwap", reading(100, 101), TestingResistance, LowRisk},
		{"middle at vwap", reading(100, 100), BalancePoint, LowRisk},

		// between upper and middle
		{"uptrend neutral", reading(101, 100.9), HealthyUptrend, LowRisk},
		{"uptrend slight", reading(101, 100.5), HealthyUptrend, LowRisk},
		{"uptrend stretched", reading(101, 100), HealthyUptrend, MediumRisk},
		{"uptrend extreme", reading(101, 90), HealthyUptrend, MediumRisk},
		{"weak rally", reading(101, 101.5), WeakRally, MediumRisk},
		{"upper range", reading(101, 101), UpperRange, LowRisk},

		// between middle and lower
		{"downtrend neutral", reading(99, 99.1), HealthyDowntrend, LowRisk},
		{"downtrend stretched", reading(99, 100), HealthyDowntrend, MediumRisk},
		{"weak selloff", reading(99, 98.5), WeakSelloff, MediumRisk},
		{"lower range", reading(99, 99), LowerRange, LowRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			assert.Equal(t, tt.scenario, got.Scenario)
			assert.Equal(t, tt.risk, got.Risk)
		})
	}
}

func TestClassifyFallbackForUndeterminedReadings(t *testing.T) {
	for _, r := range []Reading{
		reading(math.NaN(), 100),
		reading(101, math.NaN()),
		{Price: 1, VWAP: 1, KCUpper: math.NaN(), KCMiddle: math.NaN(), KCLower: math.NaN()},
	} {
		got := Classify(r)
		assert.Equal(t, RangeBound, got.Scenario)
		assert.Equal(t, LowRisk, got.Risk)
	}
}

func TestClassifyIsTotalAndComplete(t *testing.T) {
	prices := []float64{-1, 0, 97, 98, 99, 100, 101, 102, 103, math.NaN(), math.Inf(1)}
	vwaps := []float64{-100, 0, 96, 98, 99.5, 100, 100.2, 101, 104, math.NaN()}
	for _, p := range prices {
		for _, v := range vwaps {
			got := Classify(reading(p, v))
			assert.NotEmpty(t, got.Scenario, "price=%v vwap=%v", p, v)
			assert.NotEmpty(t, got.Risk, "price=%v vwap=%v", p, v)
			assert.NotEmpty(t, got.TradeIdea, "price=%v vwap=%v", p, v)
			assert.NotEmpty(t, got.Warning, "price=%v vwap=%v", p, v)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	r := reading(101.3, 100.7)
	first := Classify(r)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Classify(r))
	}
}

func TestClassifyOverextendedBreakoutExample(t *testing.T) {
	got := Classify(Reading{Price: 103, VWAP: 100, KCUpper: 102, KCMiddle: 100, KCLower: 98})
	assert.Equal(t, "Very overextended breakout. High reversal risk.", got.Scenario)
}
