package standing

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptime(t time.Time) *time.Time { return &t }

func TestStandingLabel_Ranges(t *testing.T) {
	e := NewEngine()

	cases := []struct {
		pct  float64
		want string
	}{
		{100, StandingPerfect},
		{150, StandingPerfect},
		{1e6, StandingPerfect},
		{99.99, StandingGood},
		{80, StandingGood},
		{79.9, StandingSuspect},
		{50, StandingSuspect},
		{49.99, StandingBad},
		{49, StandingBad},
		{25, StandingBad},
		{0, StandingBad},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, e.StandingLabel(tc.pct), "pct=%v", tc.pct)
	}
}

func TestStandingLabel_ConfigurableFallback(t *testing.T) {
	e := NewEngine(WithStandingFallback(StandingUnknown))
	assert.Equal(t, StandingUnknown, e.StandingLabel(10))
	assert.Equal(t, StandingBad, e.StandingLabel(49))

	// empty label keeps the default
	assert.Equal(t, StandingBad, NewEngine(WithStandingFallback("")).StandingLabel(10))
}

func TestClassifyStanding_NotDeterminedWhenNothingDue(t *testing.T) {
	e := NewEngine()
	reps := []RepaymentRecord{
		{LoanID: "L1", Amount: decimal.NewFromInt(100), RepaymentDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{LoanID: "L1", Amount: decimal.NewFromInt(50), RepaymentDate: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)},
	}

	got := e.ClassifyStanding("L1", 0, reps)
	assert.Equal(t, StandingNotDetermined, got.Status)
	assert.Equal(t, 2, got.OnTimePayments)
	assert.Equal(t, 0, got.LatePayments)
}

func TestClassifyStanding_MalformedInputDegrades(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, StandingNotDetermined, e.ClassifyStanding("", 1, nil).Status)
	assert.Equal(t, StandingNotDetermined, e.ClassifyStanding("L1", -1, nil).Status)
}

func TestClassifyStanding_DueLoan(t *testing.T) {
	e := NewEngine()
	first := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	// given out of order on purpose
	reps := []RepaymentRecord{
		{LoanID: "L1", RepaymentDate: second},
		{LoanID: "L1", RepaymentDate: first},
		{LoanID: "OTHER", RepaymentDate: second.Add(time.Hour)},
	}

	got := e.ClassifyStanding("L1", 1, reps)
	assert.Equal(t, StandingPerfect, got.Status)
	assert.Equal(t, 2, got.OnTimePayments)
	assert.Equal(t, 0, got.LatePayments)
	require.NotNil(t, got.LastRepaymentDate)
	assert.True(t, got.LastRepaymentDate.Equal(second))
}

func TestClassifyStanding_NoRepaymentsOnDueLoan(t *testing.T) {
	got := NewEngine().ClassifyStanding("L1", 1, nil)
	assert.Equal(t, StandingBad, got.Status)
	assert.Equal(t, 0, got.OnTimePayments)
	assert.Equal(t, 1, got.LatePayments)
	assert.Nil(t, got.LastRepaymentDate)
}

func TestClassifyStanding_PartialCoverage(t *testing.T) {
	e := NewEngine()
	reps := make([]RepaymentRecord, 4)
	for i := range reps {
		reps[i] = RepaymentRecord{LoanID: "L1", RepaymentDate: time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC)}
	}

	got := e.ClassifyStanding("L1", 5, reps) // 80%
	assert.Equal(t, StandingGood, got.Status)
	assert.Equal(t, 1, got.LatePayments)

	got = e.ClassifyStanding("L1", 8, reps) // 50%
	assert.Equal(t, StandingSuspect, got.Status)
	assert.Equal(t, 4, got.LatePayments)
}

func TestDueObligations(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DueObligations(LoanRecord{}, now))
	assert.Equal(t, 1, DueObligations(LoanRecord{DueDate: ptime(now.AddDate(0, 0, -1))}, now))
	// due earlier today is not yet counted: the comparison is against today's date
	assert.Equal(t, 0, DueObligations(LoanRecord{DueDate: ptime(now.Add(-time.Hour))}, now))
	assert.Equal(t, 0, DueObligations(LoanRecord{DueDate: ptime(now.AddDate(0, 0, 3))}, now))
}

func TestRiskLabel_Ranges(t *testing.T) {
	e := NewEngine()

	cases := []struct {
		pct       float64
		wantLabel string
		wantScore int
	}{
		{0, RiskNone, 100},
		{1, RiskModerate, 50},
		{10, RiskModerate, 50},
		{11, RiskHigh, 20},
		{25, RiskHigh, 20},
		{80, RiskHigh, 20},
		{81, RiskCannotLoan, 0},
		{100, RiskCannotLoan, 0},
		{0.5, RiskModerate, 50},
		{10.5, RiskHigh, 20},
		{80.01, RiskCannotLoan, 0},
	}
	for _, tc := range cases {
		label, score := e.RiskLabel(tc.pct)
		assert.Equal(t, tc.wantLabel, label, "pct=%v", tc.pct)
		assert.Equal(t, tc.wantScore, score, "pct=%v", tc.pct)
	}
}

func TestClassifyRisk_NoLoans(t *testing.T) {
	got := NewEngine().ClassifyRisk(nil)
	assert.Equal(t, RiskResult{RiskLevel: RiskNone, RiskScore: 100, MissedPayments: 0, CustomerSince: nil}, got)
}

func TestClassifyRisk_OneOfFourOverdue(t *testing.T) {
	oldest := time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC)
	loans := []LoanRecord{
		{ID: "a", Status: StatusActive, CreatedAt: ptime(oldest.AddDate(1, 0, 0))},
		{ID: "b", Status: StatusOverdue, CreatedAt: ptime(oldest)},
		{ID: "c", Status: StatusCompleted, CreatedAt: ptime(oldest.AddDate(0, 2, 0))},
		{ID: "d", Status: StatusDefault},
	}

	got := NewEngine().ClassifyRisk(loans)
	assert.Equal(t, RiskHigh, got.RiskLevel)
	assert.Equal(t, 20, got.RiskScore)
	assert.Equal(t, 2, got.MissedPayments)
	require.NotNil(t, got.CustomerSince)
	assert.True(t, got.CustomerSince.Equal(oldest))
}

func TestClassifyRisk_FractionalPercentages(t *testing.T) {
	e := NewEngine()

	loans := make([]LoanRecord, 200)
	for i := range loans {
		loans[i] = LoanRecord{Status: StatusActive}
	}
	loans[0].Status = StatusOverdue // 0.5%
	assert.Equal(t, RiskModerate, e.ClassifyRisk(loans).RiskLevel)

	three := []LoanRecord{{Status: StatusOverdue}, {Status: StatusActive}, {Status: StatusActive}}
	assert.Equal(t, RiskHigh, e.ClassifyRisk(three).RiskLevel)

	all := []LoanRecord{{Status: StatusOverdue}, {Status: StatusOverdue}}
	assert.Equal(t, RiskCannotLoan, e.ClassifyRisk(all).RiskLevel)
}

func TestClassifyRisk_LookupMissLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := NewEngine(
		WithLogger(logger),
		WithRiskTable([]RiskBand{{Label: RiskNone, Low: 0, High: 0, Score: 100}}),
	)

	got := e.ClassifyRisk([]LoanRecord{{Status: StatusOverdue}})
	assert.Equal(t, RiskUnknown, got.RiskLevel)
	assert.Equal(t, 0, got.RiskScore)
	assert.Equal(t, 1, got.MissedPayments)
	assert.True(t, strings.Contains(buf.String(), "lookup miss"), buf.String())
}

func TestTablesAreCopies(t *testing.T) {
	tbl := StandingTable()
	tbl[0].Min = 0
	assert.Equal(t, float64(100), StandingTable()[0].Min)

	bands := RiskTable()
	bands[0].Score = 99
	assert.Equal(t, 0, RiskTable()[0].Score)
}
