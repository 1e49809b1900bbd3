package overview

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryDTO is the dashboard's headline figures for one reporting period.
type SummaryDTO struct {
	Period                string          `json:"period"`
	From                  time.Time       `json:"from"`
	To                    time.Time       `json:"to"`
	LoanCount             int64           `json:"loan_count"`
	ActiveLoans           int64           `json:"active_loans"`
	TotalDisbursed        decimal.Decimal `json:"total_disbursed"`
	TotalRepaid           decimal.Decimal `json:"total_repaid"`
	OutstandingBalance    decimal.Decimal `json:"outstanding_balance"`
	ExpectedInterest      decimal.Decimal `json:"expected_interest"`
	TotalDiscountsGiven   decimal.Decimal `json:"total_discounts_given"`
	TotalTransactionCosts decimal.Decimal `json:"total_transaction_costs"`
	AverageLoanSize       decimal.Decimal `json:"average_loan_size"`
	AverageDurationDays   decimal.Decimal `json:"average_duration_days"`
	// Percentage of the period's loans currently Overdue
	DefaultRate decimal.Decimal `json:"default_rate"`
}
