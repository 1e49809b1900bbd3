package borrower

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterInput struct {
	BusinessID string     `json:"-"`
	Name       string     `json:"name"`
	NRCNumber  string     `json:"nrc_number"`
	Gender     string     `json:"gender"`
	Location   string     `json:"location"`
	Mobile     string     `json:"mobile"`
	Occupation string     `json:"occupation"`
	BirthDate  *time.Time `json:"birth_date"`
	Notes      string     `json:"notes"`
}

type BorrowerDTO struct {
	BorrowerID string     `json:"borrower_id"`
	Name       string     `json:"name"`
	NRCNumber  string     `json:"nrc_number"`
	Gender     string     `json:"gender,omitempty"`
	Location   string     `json:"location,omitempty"`
	Mobile     string     `json:"mobile,omitempty"`
	Occupation string     `json:"occupation,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type OutstandingDebtsDTO struct {
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	ActiveLoans      int             `json:"active_loans"`
	EarliestDueDate  *time.Time      `json:"earliest_due_date"`
}

type AccountStatusDTO struct {
	TotalLoaned         decimal.Decimal `json:"total_loaned"`
	TotalRepaid         decimal.Decimal `json:"total_repaid"`
	CreditLimit         decimal.Decimal `json:"credit_limit"`
	TotalInterestIncome decimal.Decimal `json:"total_interest_income"`
	LastContractDate    *time.Time      `json:"last_contract_date"`
}

type LoanHistoryDTO struct {
	LoanID       string          `json:"loan_id"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate string          `json:"interest_rate"`
	Status       string          `json:"status"`
	RepaidAmount decimal.Decimal `json:"repaid_amount"`
	Balance      decimal.Decimal `json:"balance"`
}
