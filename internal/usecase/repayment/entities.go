package repayment

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	BusinessID    string
	LoanID        string
	Amount        decimal.Decimal
	Discount      decimal.Decimal
	RepaymentDate time.Time // date-only; stored .UTC()
	Status        string    // loan status after this repayment
}

// RepaymentItemDTO is a stored repayment as listed under its loan.
type RepaymentItemDTO struct {
	RepaymentID   string          `json:"repayment_id"`
	LoanID        string          `json:"loan_id"`
	Amount        decimal.Decimal `json:"amount"`
	Discount      decimal.Decimal `json:"discount"`
	RepaymentDate time.Time       `json:"repayment_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

type RepaymentDTO struct {
	RepaymentID   string          `json:"repayment_id"`
	LoanID        string          `json:"loan_id"`
	Amount        decimal.Decimal `json:"amount"`
	Discount      decimal.Decimal `json:"discount"`
	RepaymentDate time.Time       `json:"repayment_date"`
	UpdatedAmount decimal.Decimal `json:"updated_amount"`
	LoanStatus    string          `json:"loan_status"`
}
