// Package standing classifies borrower repayment standing and lending risk, and
// computes loan balances after a repayment. Everything here works on records
// that were already fetched from storage; nothing in the package performs I/O.
package standing

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusOverdue   Status = "Overdue"
	StatusDefault   Status = "Default"
	StatusCompleted Status = "Completed"
)

// LoanRecord is the engine's view of a loan row.
type LoanRecord struct {
	ID           string
	BorrowerID   string
	Amount       decimal.Decimal // outstanding principal
	InterestRate decimal.Decimal // percent
	Status       Status
	DueDate      *time.Time
	CreatedAt    *time.Time
}

type RepaymentRecord struct {
	LoanID        string
	Amount        decimal.Decimal
	Discount      decimal.Decimal
	RepaymentDate time.Time
}

type StandingResult struct {
	Status            string     `json:"status"`
	OnTimePayments    int        `json:"on_time_payments"`
	LatePayments      int        `json:"late_payments"`
	LastRepaymentDate *time.Time `json:"last_repayment_date"`
}

type RiskResult struct {
	RiskLevel      string     `json:"risk_level"`
	RiskScore      int        `json:"risk_score"`
	MissedPayments int        `json:"missed_payments"`
	CustomerSince  *time.Time `json:"customer_since"`
}

type SettlementResult struct {
	UpdatedAmount decimal.Decimal `json:"updated_amount"`
	NewStatus     Status          `json:"new_status"`
}
