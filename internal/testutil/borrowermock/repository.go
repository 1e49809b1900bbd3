package borrowermock

import (
	"context"

	domain "microfinance-backoffice/internal/domain/borrower"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, b *domain.Borrower) error
	GetByBorrowerIDFn func(ctx context.Context, businessID, borrowerID string) (*domain.Borrower, error)
	GetByNRCFn        func(ctx context.Context, businessID, nrc string) (*domain.Borrower, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBorrowerID(ctx context.Context, businessID, borrowerID string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, businessID, borrowerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNRC(ctx context.Context, businessID, nrc string) (*domain.Borrower, error) {
	if m.GetByNRCFn != nil {
		return m.GetByNRCFn(ctx, businessID, nrc)
	}
	return nil, context.Canceled
}
