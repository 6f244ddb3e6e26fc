package scenario

// RiskLevel labels how risky acting on a scenario is.
type RiskLevel string

const (
	LowRisk    RiskLevel = "Low Risk"
	MediumRisk RiskLevel = "Medium Risk"
	HighRisk   RiskLevel = "High Risk"
)

// Result is the interpretation of one numeric reading.
type Result struct {
	Scenario  string    `json:"scenario"`
	Risk      RiskLevel `json:"risk"`
	TradeIdea string    `json:"trade_idea"`
	Warning   string    `json:"warning"`
}

// Scenario labels produced by Classify.
const (
	VeryOverextendedBreakout  = "Very overextended breakout. High reversal risk."
	OverextendedBreakout      = "Overextended breakout. Watch for exhaustion."
	BullishBreakout           = "Bullish breakout. Trend-follow possible."
	SuspectBreakout           = "Suspect breakout. Possible fakeout."
	IndecisionAtHighs         = "Indecision at highs. Possible top or consolidation."
	VeryOverextendedBreakdown = "Very overextended breakdown. High bounce risk."
	OverextendedBreakdown     = "Overextended breakdown. Watch for exhaustion."
	BearishBreakdown          = "Bearish breakdown. Trend-follow possible."
	SuspectBreakdown          = "Suspect breakdown. Possible bear trap."
	IndecisionAtLows          = "Indecision at lows. Possible bottom or consolidation."
	TestingSupport            = "Testing middle band as support."
	TestingResistance         = "Testing middle band as resistance."
	BalancePoint              = "Balance point. Wait for direction."
	HealthyUptrend            = "Healthy uptrend."
	WeakRally                 = "Weak rally. Mean reversion likely."
	UpperRange                = "Range between VWAP and upper band. Wait."
	HealthyDowntrend          = "Healthy downtrend."
	WeakSelloff               = "Weak selloff. Mean reversion likely."
	LowerRange                = "Range between VWAP and lower band. Wait."
	RangeBound                = "Balanced, range-bound market. Wait for clear direction."
)

var (
	resultVeryOverextendedBreakout = Result{
		Scenario:  VeryOverextendedBreakout,
		Risk:      HighRisk,
		TradeIdea: "Avoid chasing. Take profits or tighten stops on longs.",
		Warning:   "Price is far above VWAP. Sharp mean reversion is likely.",
	}
	resultOverextendedBreakout = Result{
		Scenario:  OverextendedBreakout,
		Risk:      MediumRisk,
		TradeIdea: "Hold longs with trailing stops. Avoid fresh entries here.",
		Warning:   "Momentum may be fading at stretched levels.",
	}
	resultBullishBreakout = Result{
		Scenario:  BullishBreakout,
		Risk:      MediumRisk,
		TradeIdea: "Trend-follow long on a retest of the upper band.",
		Warning:   "Confirm with volume before adding size.",
	}
	resultSuspectBreakout = Result{
		Scenario:  SuspectBreakout,
		Risk:      HighRisk,
		TradeIdea: "Avoid new longs. Wait for price to reclaim VWAP.",
		Warning:   "Breakout above the channel is not supported by VWAP.",
	}
	resultIndecisionAtHighs = Result{
		Scenario:  IndecisionAtHighs,
		Risk:      MediumRisk,
		TradeIdea: "Wait for a decisive move away from VWAP.",
		Warning:   "Price is pinned to VWAP at the top of the channel.",
	}
	resultVeryOverextendedBreakdown = Result{
		Scenario:  VeryOverextendedBreakdown,
		Risk:      HighRisk,
		TradeIdea: "Avoid chasing. Take profits or tighten stops on shorts.",
		Warning:   "Price is far below VWAP. Sharp mean reversion is likely.",
	}
	resultOverextendedBreakdown = Result{
		Scenario:  OverextendedBreakdown,
		Risk:      MediumRisk,
		TradeIdea: "Hold shorts with trailing stops. Avoid fresh entries here.",
		Warning:   "Selling pressure may be fading at stretched levels.",
	}
	resultBearishBreakdown = Result{
		Scenario:  BearishBreakdown,
		Risk:      MediumRisk,
		TradeIdea: "Trend-follow short on a retest of the lower band.",
		Warning:   "Confirm with volume before adding size.",
	}
	resultSuspectBreakdown = Result{
		Scenario:  SuspectBreakdown,
		Risk:      HighRisk,
		TradeIdea: "Avoid new shorts. Wait for price to lose VWAP.",
		Warning:   "Breakdown below the channel is not supported by VWAP.",
	}
	resultIndecisionAtLows = Result{
		Scenario:  IndecisionAtLows,
		Risk:      MediumRisk,
		TradeIdea: "Wait for a decisive move away from VWAP.",
		Warning:   "Price is pinned to VWAP at the bottom of the channel.",
	}
	resultTestingSupport = Result{
		Scenario:  TestingSupport,
		Risk:      LowRisk,
		TradeIdea: "Look for long entries if the middle band holds.",
		Warning:   "A close below the middle band invalidates support.",
	}
	resultTestingResistance = Result{
		Scenario:  TestingResistance,
		Risk:      LowRisk,
		TradeIdea: "Look for short entries if the middle band caps price.",
		Warning:   "A close above the middle band invalidates resistance.",
	}
	resultBalancePoint = Result{
		Scenario:  BalancePoint,
		Risk:      LowRisk,
		TradeIdea: "Stay flat until price leaves the middle band.",
		Warning:   "No directional edge at the balance point.",
	}
	resultWeakRally = Result{
		Scenario:  WeakRally,
		Risk:      MediumRisk,
		TradeIdea: "Avoid longs. Fade strength back toward VWAP.",
		Warning:   "Price is rising inside the channel while below VWAP.",
	}
	resultUpperRange = Result{
		Scenario:  UpperRange,
		Risk:      LowRisk,
		TradeIdea: "Wait for price to leave VWAP before trading.",
		Warning:   "No directional edge inside the range.",
	}
	resultWeakSelloff = Result{
		Scenario:  WeakSelloff,
		Risk:      MediumRisk,
		TradeIdea: "Avoid shorts. Fade weakness back toward VWAP.",
		Warning:   "Price is falling inside the channel while above VWAP.",
	}
	resultLowerRange = Result{
		Scenario:  LowerRange,
		Risk:      LowRisk,
		TradeIdea: "Wait for price to leave VWAP before trading.",
		Warning:   "No directional edge inside the range.",
	}
	resultRangeBound = Result{
		Scenario:  RangeBound,
		Risk:      LowRisk,
		TradeIdea: "Stay flat and wait for a clear direction.",
		Warning:   "Readings do not place price in a defined zone.",
	}
)

// Classify maps a numeric reading to a scenario. It is total: every
// reading, valid or not, produces a result.
func Classify(r Reading) Result {
	return classifyPositioning(Locate(r))
}

func classifyPositioning(p Positioning) Result {
	switch p.KC {
	case AboveUpper, AtUpper:
		switch p.VWAP {
		case AboveVWAP:
			switch p.Deviation {
			case Extreme:
				return resultVeryOverextendedBreakout
			case Stretched:
				return resultOverextendedBreakout
			default:
				return resultBullishBreakout
			}
		case BelowVWAP:
			return resultSuspectBreakout
		case AtVWAP:
			return resultIndecisionAtHighs
		}

	case BelowLower, AtLower:
		switch p.VWAP {
		case BelowVWAP:
			switch p.Deviation {
			case Extreme:
				return resultVeryOverextendedBreakdown
			case Stretched:
				return resultOverextendedBreakdown
			default:
				return resultBearishBreakdown
			}
		case AboveVWAP:
			return resultSuspectBreakdown
		case AtVWAP:
			return resultIndecisionAtLows
		}

	case AtMiddle:
		switch p.VWAP {
		case AboveVWAP:
			return resultTestingSupport
		case BelowVWAP:
			return resultTestingResistance
		case AtVWAP:
			return resultBalancePoint
		}

	case BetweenUpperMiddle:
		switch p.VWAP {
		case AboveVWAP:
			return trendResult(HealthyUptrend, p.Deviation,
				"Buy pullbacks toward VWAP or the middle band.",
				"Trend is intact while price holds above VWAP.")
		case BelowVWAP:
			return resultWeakRally
		case AtVWAP:
			return resultUpperRange
		}

	case BetweenMiddleLower:
		switch p.VWAP {
		case BelowVWAP:
			return trendResult(HealthyDowntrend, p.Deviation,
				"Sell rallies toward VWAP or the middle band.",
				"Trend is intact while price holds below VWAP.")
		case AboveVWAP:
			return resultWeakSelloff
		case AtVWAP:
			return resultLowerRange
		}
	}

	return resultRangeBound
}

// trendResult grades an in-channel trend by how far price has run from VWAP.
func trendResult(scenario string, dev DeviationLabel, idea, warning string) Result {
	risk := MediumRisk
	if dev == Neutral || dev == Slight {
		risk = LowRisk
	}
	return Result{Scenario: scenario, Risk: risk, TradeIdea: idea, Warning: warning}
}
