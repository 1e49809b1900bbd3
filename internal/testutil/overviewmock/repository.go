package overviewmock

import (
	"context"

	domain "microfinance-backoffice/internal/domain/overview"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	TotalsFn func(ctx context.Context, businessID string, w domain.Window) (*domain.Totals, error)
}

func (m *Repo) Totals(ctx context.Context, businessID string, w domain.Window) (*domain.Totals, error) {
	if m.TotalsFn != nil {
		return m.TotalsFn(ctx, businessID, w)
	}
	return nil, context.Canceled
}
