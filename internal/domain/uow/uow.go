package uow

import (
	"context"

	"microfinance-backoffice/internal/domain/borrower"
	"microfinance-backoffice/internal/domain/loan"
	"microfinance-backoffice/internal/domain/repayment"
)

// domain/uow/uow.go
type Repos struct {
	Borrowers  borrower.Repository
	Loans      loan.Repository
	Repayments repayment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, businessID, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
