package overview

import (
	"context"
	"time"

	domain "microfinance-backoffice/internal/domain/overview"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Usecase struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUsecase(repo domain.Repository) *Usecase {
	return &Usecase{repo: repo, now: time.Now}
}

func (u *Usecase) Summary(ctx context.Context, businessID, period string) (*SummaryDTO, error) {
	w, err := PeriodWindow(period, u.now())
	if err != nil {
		return nil, err
	}
	t, err := u.repo.Totals(ctx, businessID, w)
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = DefaultPeriod
	}

	out := &SummaryDTO{
		Period:                period,
		From:                  w.From,
		To:                    w.To,
		LoanCount:             t.LoanCount,
		ActiveLoans:           t.ActiveLoans,
		TotalDisbursed:        t.Disbursed.Round(2),
		TotalRepaid:           t.Repaid.Round(2),
		OutstandingBalance:    t.Outstanding.Round(2),
		ExpectedInterest:      t.ExpectedInterest.Round(2),
		TotalDiscountsGiven:   t.Discounts.Round(2),
		TotalTransactionCosts: t.TransactionCosts.Round(2),
		AverageLoanSize:       decimal.Zero,
		AverageDurationDays:   decimal.Zero,
		DefaultRate:           decimal.Zero,
	}
	if t.LoanCount > 0 {
		n := decimal.NewFromInt(t.LoanCount)
		out.AverageLoanSize = t.Loaned.Div(n).Round(2)
		out.AverageDurationDays = decimal.NewFromInt(t.DurationDays).Div(n).Round(0)
		out.DefaultRate = decimal.NewFromInt(t.OverdueLoans).Mul(hundred).Div(n).Round(1)
	}
	return out, nil
}
