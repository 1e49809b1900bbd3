package standing

import (
	"math"
	"time"
)

// DueObligations reports whether a loan counts as a due obligation at now:
// 1 when its due date falls before the start of now's UTC day, otherwise 0.
func DueObligations(l LoanRecord, now time.Time) int {
	if l.DueDate == nil || l.DueDate.IsZero() {
		return 0
	}
	today := now.UTC().Truncate(24 * time.Hour)
	if l.DueDate.UTC().Before(today) {
		return 1
	}
	return 0
}

// ClassifyStanding derives a loan's repayment standing from the number of due
// obligations and the repayments recorded against it. Every recorded repayment
// counts as on time; repayment dates are not compared to the due date.
// Records tagged with a different loan id are ignored.
func (e *Engine) ClassifyStanding(loanID string, due int, repayments []RepaymentRecord) StandingResult {
	if loanID == "" || due < 0 {
		return StandingResult{Status: StandingNotDetermined}
	}

	onTime := 0
	var last *time.Time
	for _, r := range repayments {
		if r.LoanID != "" && r.LoanID != loanID {
			continue
		}
		onTime++
		if r.RepaymentDate.IsZero() {
			continue
		}
		if last == nil || r.RepaymentDate.After(*last) {
			d := r.RepaymentDate
			last = &d
		}
	}

	if due == 0 {
		return StandingResult{
			Status:            StandingNotDetermined,
			OnTimePayments:    onTime,
			LastRepaymentDate: last,
		}
	}

	pct := float64(onTime) / float64(due) * 100
	return StandingResult{
		Status:            e.StandingLabel(pct),
		OnTimePayments:    onTime,
		LatePayments:      max(due-onTime, 0),
		LastRepaymentDate: last,
	}
}

// StandingLabel maps an on-time repayment percentage to a standing label.
func (e *Engine) StandingLabel(pct float64) string {
	for _, t := range e.standings {
		if pct >= t.Min {
			return t.Label
		}
	}
	return e.standingFallback
}

// ClassifyRisk derives a borrower's risk band from the share of their loans
// that are Overdue. A borrower without loans is no_risk by policy.
func (e *Engine) ClassifyRisk(loans []LoanRecord) RiskResult {
	var (
		overdue, missed int
		since           *time.Time
	)
	for _, l := range loans {
		switch l.Status {
		case StatusOverdue:
			overdue++
			missed++
		case StatusDefault:
			missed++
		}
		if l.CreatedAt != nil && !l.CreatedAt.IsZero() {
			if since == nil || l.CreatedAt.Before(*since) {
				c := *l.CreatedAt
				since = &c
			}
		}
	}

	pct := 0
	if total := len(loans); total > 0 {
		// integer ceiling of overdue/total*100
		pct = (overdue*100 + total - 1) / total
	}

	level, score := e.riskBand(pct)
	return RiskResult{
		RiskLevel:      level,
		RiskScore:      score,
		MissedPayments: missed,
		CustomerSince:  since,
	}
}

// RiskLabel maps an overdue percentage to a risk band label and score.
// Fractional percentages are rounded up to the next whole percent.
func (e *Engine) RiskLabel(pct float64) (string, int) {
	return e.riskBand(int(math.Ceil(math.Round(pct*1e6) / 1e6)))
}

func (e *Engine) riskBand(pct int) (string, int) {
	for _, b := range e.bands {
		if b.contains(pct) {
			return b.Label, b.Score
		}
	}
	e.log.Warn("risk band lookup miss", "percentage", pct, "bands", len(e.bands))
	return RiskUnknown, 0
}
