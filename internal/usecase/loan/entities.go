package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	BusinessID       string          `json:"-"`
	NRCNumber        string          `json:"nrc_number"`
	Amount           decimal.Decimal `json:"amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TransactionCosts decimal.Decimal `json:"transaction_costs"`
	DurationDays     int             `json:"duration_days"`
	DueDate          string          `json:"due_date"`
	LoanReason       string          `json:"loan_reason"`
}

type LoanDTO struct {
	LoanID           string          `json:"loan_id"`
	BorrowerID       string          `json:"borrower_id"`
	Amount           decimal.Decimal `json:"amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TransactionCosts decimal.Decimal `json:"transaction_costs"`
	DurationDays     int             `json:"duration_days"`
	DueDate          *time.Time      `json:"due_date"`
	LoanReason       string          `json:"loan_reason,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type SweepResult struct {
	Checked      int   `json:"checked"`
	Transitioned int64 `json:"transitioned"`
	Skipped      int   `json:"skipped"`
}
