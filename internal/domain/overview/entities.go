package overview

import (
	"time"

	"github.com/shopspring/decimal"
)

// Window is an inclusive created_at range, both ends UTC.
type Window struct {
	From time.Time
	To   time.Time
}

// Totals are the raw portfolio aggregates of one business over a Window.
// Loan figures count loans created in the window, repayment figures count
// repayments recorded in it, and Disbursed sums the disbursement ledger.
type Totals struct {
	LoanCount        int64
	ActiveLoans      int64
	OverdueLoans     int64
	Loaned           decimal.Decimal
	Outstanding      decimal.Decimal
	ExpectedInterest decimal.Decimal
	TransactionCosts decimal.Decimal
	DurationDays     int64

	Repaid    decimal.Decimal
	Discounts decimal.Decimal

	Disbursed decimal.Decimal
}
