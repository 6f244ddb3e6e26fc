package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableHasElevenCombinations(t *testing.T) {
	table := DefaultTable()
	require.Len(t, table, 11)

	for _, e := range table.Entries() {
		in, ok := table.Get(e.Selection)
		require.True(t, ok, "selection %+v", e.Selection)
		assert.NotEmpty(t, in.Interpretation)
		assert.NotEmpty(t, in.Action)
	}
}

func TestDefaultTableIsACopy(t *testing.T) {
	a := DefaultTable()
	delete(a, Selection{PriceAboveVWAP, Rising, ZoneAboveUpper, Large})
	assert.Len(t, DefaultTable(), 11)
}

func TestLookupKnownTuple(t *testing.T) {
	c := NewClassifier()
	out := c.Lookup(ModeCategorical, Selection{"Above VWAP", "Rising", "Above KC Upper", "Large"})

	assert.True(t, out.Matched)
	assert.Equal(t, "Overbought, strong momentum but likely overextended", out.Scenario)
	assert.Equal(t, "Take profits, consider partial exit", out.TradeIdea)
	require.NotNil(t, out.Selection)
	assert.Equal(t, Large, out.Selection.Distance)
}

func TestLookupUnmappedTuples(t *testing.T) {
	c := NewClassifier()
	table := c.Table()

	// Every combination of the enumerated labels outside the table is a
	// reportable miss.
	misses := 0
	for _, pv := range []PriceVsVWAP{PriceAboveVWAP, PriceAtVWAP, PriceBelowVWAP} {
		for _, sl := range []Slope{Rising, Falling} {
			for _, kc := range []KCZone{ZoneAboveUpper, ZoneBetweenMiddleUpper, ZoneNearVWAP, ZoneNearMiddle, ZoneBetweenMiddleLower, ZoneBelowLower} {
				for _, d := range []Distance{Large, Moderate, Small, NoDist} {
					s := Selection{pv, sl, kc, d}
					out := c.Lookup(ModeCategorical, s)
					if _, ok := table[s]; ok {
						assert.True(t, out.Matched)
						continue
					}
					misses++
					assert.False(t, out.Matched)
					assert.Equal(t, NoInterpretation, out.Scenario)
					assert.Empty(t, out.TradeIdea)
				}
			}
		}
	}
	assert.Equal(t, 3*2*6*4-11, misses)

	out := c.Lookup(ModeCategorical, Selection{"Sideways", "Flat", "Nowhere", "Huge"})
	assert.False(t, out.Matched)
}

func TestDistanceLabel(t *testing.T) {
	tests := []struct {
		diff float64
		want Distance
	}{
		{10, Large},
		{5, Large},
		{4.99, Moderate},
		{2, Moderate},
		{1.99, Small},
		{0.01, Small},
		{0, NoDist},
		{-3, NoDist},
		{math.NaN(), NoDist},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DistanceLabel(tt.diff), "diff %v", tt.diff)
	}
}

func TestSlopeInputResolveUsesAbsoluteDiff(t *testing.T) {
	in := SlopeInput{PriceVWAP: PriceBelowVWAP, VWAPSlope: Falling, KCPosition: ZoneBelowLower, PointsDiff: -6.5}
	sel := in.Resolve(DefaultDistanceThresholds)
	assert.Equal(t, Selection{PriceBelowVWAP, Falling, ZoneBelowLower, Large}, sel)

	custom := DistanceThresholds{Large: 10, Moderate: 4}
	assert.Equal(t, Moderate, in.Resolve(custom).Distance)
}
