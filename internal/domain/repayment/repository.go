package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error

	// Newest first
	ListByLoanID(ctx context.Context, loanID uint64) ([]Repayment, error)
	ListByLoanIDs(ctx context.Context, loanIDs []uint64) ([]Repayment, error)

	// Get by public repayment_id
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
}
