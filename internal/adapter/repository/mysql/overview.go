package mysql

import (
	"context"

	loanDomain "microfinance-backoffice/internal/domain/loan"
	overviewDomain "microfinance-backoffice/internal/domain/overview"
	repaymentDomain "microfinance-backoffice/internal/domain/repayment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OverviewRepository struct{ db *gorm.DB }

func NewOverviewRepository(db *gorm.DB) *OverviewRepository {
	return &OverviewRepository{db: db}
}

type loanAggregates struct {
	LoanCount        int64
	ActiveLoans      int64
	OverdueLoans     int64
	Loaned           decimal.Decimal
	Outstanding      decimal.Decimal
	ExpectedInterest decimal.Decimal
	TransactionCosts decimal.Decimal
	DurationDays     int64
}

type repaymentAggregates struct {
	Repaid    decimal.Decimal
	Discounts decimal.Decimal
}

const loanAggregateColumns = `COUNT(*) AS loan_count,
	COALESCE(SUM(CASE WHEN status = 'Active' THEN 1 ELSE 0 END), 0) AS active_loans,
	COALESCE(SUM(CASE WHEN status = 'Overdue' THEN 1 ELSE 0 END), 0) AS overdue_loans,
	COALESCE(SUM(amount), 0) AS loaned,
	COALESCE(SUM(CASE WHEN status <> 'Completed' THEN amount ELSE 0 END), 0) AS outstanding,
	COALESCE(SUM(amount * interest_rate / 100.0), 0) AS expected_interest,
	COALESCE(SUM(transaction_costs), 0) AS transaction_costs,
	COALESCE(SUM(duration_days), 0) AS duration_days`

// Totals runs one aggregate query per table; soft-deleted loans are excluded.
func (r *OverviewRepository) Totals(ctx context.Context, businessID string, w overviewDomain.Window) (*overviewDomain.Totals, error) {
	db := r.db.WithContext(ctx)
	from, to := w.From.UTC(), w.To.UTC()

	var la loanAggregates
	if err := db.Model(&loanDomain.Loan{}).
		Select(loanAggregateColumns).
		Where("business_id = ? AND created_at BETWEEN ? AND ?", businessID, from, to).
		Scan(&la).Error; err != nil {
		return nil, err
	}

	var ra repaymentAggregates
	if err := db.Model(&repaymentDomain.Repayment{}).
		Select("COALESCE(SUM(amount), 0) AS repaid, COALESCE(SUM(discount), 0) AS discounts").
		Where("business_id = ? AND created_at BETWEEN ? AND ?", businessID, from, to).
		Scan(&ra).Error; err != nil {
		return nil, err
	}

	var disbursed decimal.Decimal
	if err := db.Model(&loanDomain.Disbursement{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("business_id = ? AND created_at BETWEEN ? AND ?", businessID, from, to).
		Row().Scan(&disbursed); err != nil {
		return nil, err
	}

	return &overviewDomain.Totals{
		LoanCount:        la.LoanCount,
		ActiveLoans:      la.ActiveLoans,
		OverdueLoans:     la.OverdueLoans,
		Loaned:           la.Loaned,
		Outstanding:      la.Outstanding,
		ExpectedInterest: la.ExpectedInterest,
		TransactionCosts: la.TransactionCosts,
		DurationDays:     la.DurationDays,
		Repaid:           ra.Repaid,
		Discounts:        ra.Discounts,
		Disbursed:        disbursed,
	}, nil
}
