package loanmock

import (
	"context"

	domain "microfinance-backoffice/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error, reads to context.Canceled.
type Repo struct {
	CreateFn                  func(ctx context.Context, l *domain.Loan) error
	SaveFn                    func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn             func(ctx context.Context, businessID, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn    func(ctx context.Context, businessID, loanID string) (*domain.Loan, error)
	ListByBorrowerFn          func(ctx context.Context, businessID, borrowerID string) ([]domain.Loan, error)
	ListRecentByBorrowerFn    func(ctx context.Context, businessID, borrowerID string, limit int) ([]domain.Loan, error)
	ListByBorrowerAndStatusFn func(ctx context.Context, businessID, borrowerID string, statuses ...domain.Status) ([]domain.Loan, error)
	ListByStatusFn            func(ctx context.Context, status domain.Status) ([]domain.Loan, error)
	UpdateStatusFn            func(ctx context.Context, loanIDs []string, from, to domain.Status) (int64, error)
	CreateDisbursementFn      func(ctx context.Context, d *domain.Disbursement) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, businessID, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, businessID, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, businessID, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, businessID, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBorrower(ctx context.Context, businessID, borrowerID string) ([]domain.Loan, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, businessID, borrowerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListRecentByBorrower(ctx context.Context, businessID, borrowerID string, limit int) ([]domain.Loan, error) {
	if m.ListRecentByBorrowerFn != nil {
		return m.ListRecentByBorrowerFn(ctx, businessID, borrowerID, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBorrowerAndStatus(ctx context.Context, businessID, borrowerID string, statuses ...domain.Status) ([]domain.Loan, error) {
	if m.ListByBorrowerAndStatusFn != nil {
		return m.ListByBorrowerAndStatusFn(ctx, businessID, borrowerID, statuses...)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, loanIDs []string, from, to domain.Status) (int64, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, loanIDs, from, to)
	}
	return 0, nil
}

func (m *Repo) CreateDisbursement(ctx context.Context, d *domain.Disbursement) error {
	if m.CreateDisbursementFn != nil {
		return m.CreateDisbursementFn(ctx, d)
	}
	return nil
}
