package standing

const (
	StandingPerfect       = "perfect standing"
	StandingGood          = "good standing"
	StandingSuspect       = "suspect"
	StandingBad           = "bad standing"
	StandingUnknown       = "Unknown Standing"
	StandingNotDetermined = "Standing Not Determined Yet"
)

const (
	RiskCannotLoan = "cannot_loan"
	RiskHigh       = "high_risk"
	RiskModerate   = "moderate_risk"
	RiskNone       = "no_risk"
	RiskUnknown    = "unknown"
)

// Threshold maps a minimum on-time repayment percentage to a standing label.
type Threshold struct {
	Label string
	Min   float64
}

// RiskBand is an inclusive [Low, High] range of overdue percentages.
type RiskBand struct {
	Label string
	Low   int
	High  int
	Score int
}

// Both tables are walked in order and the first match wins; the ranges are
// not checked for exclusivity.
var (
	defaultStandings = []Threshold{
		{Label: StandingPerfect, Min: 100},
		{Label: StandingGood, Min: 80},
		{Label: StandingSuspect, Min: 50},
		{Label: StandingBad, Min: 49},
	}

	defaultRiskBands = []RiskBand{
		{Label: RiskCannotLoan, Low: 81, High: 100, Score: 0},
		{Label: RiskHigh, Low: 11, High: 80, Score: 20},
		{Label: RiskModerate, Low: 1, High: 10, Score: 50},
		{Label: RiskNone, Low: 0, High: 0, Score: 100},
	}
)

// StandingTable returns a copy of the default standing thresholds.
func StandingTable() []Threshold {
	return append([]Threshold(nil), defaultStandings...)
}

// RiskTable returns a copy of the default risk bands.
func RiskTable() []RiskBand {
	return append([]RiskBand(nil), defaultRiskBands...)
}

func (b RiskBand) contains(pct int) bool { return b.Low <= pct && pct <= b.High }
