package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, businessID, loanID string) (*Loan, error)
	// Locks the row until the surrounding transaction ends
	GetByLoanIDForUpdate(ctx context.Context, businessID, loanID string) (*Loan, error)

	ListByBorrower(ctx context.Context, businessID, borrowerID string) ([]Loan, error)
	ListRecentByBorrower(ctx context.Context, businessID, borrowerID string, limit int) ([]Loan, error)
	ListByBorrowerAndStatus(ctx context.Context, businessID, borrowerID string, statuses ...Status) ([]Loan, error)

	// Across all businesses; used by the overdue sweep
	ListByStatus(ctx context.Context, status Status) ([]Loan, error)
	// Moves loans still in `from` to `to`; returns the number of rows changed
	UpdateStatus(ctx context.Context, loanIDs []string, from, to Status) (int64, error)

	CreateDisbursement(ctx context.Context, d *Disbursement) error
}
