package overviewmock

import (
	"context"
	"testing"

	domain "microfinance-backoffice/internal/domain/overview"
)

func TestRepo_Totals(t *testing.T) {
	want := &domain.Totals{LoanCount: 2}
	m := &Repo{
		TotalsFn: func(_ context.Context, businessID string, _ domain.Window) (*domain.Totals, error) {
			if businessID != "biz" {
				t.Fatalf("businessID mismatch: %s", businessID)
			}
			return want, nil
		},
	}
	got, err := m.Totals(context.Background(), "biz", domain.Window{})
	if err != nil || got != want {
		t.Fatalf("Totals: got %+v, %v", got, err)
	}

	m = &Repo{}
	if _, err := m.Totals(context.Background(), "biz", domain.Window{}); err != context.Canceled {
		t.Fatalf("Totals default: want context.Canceled, got %v", err)
	}
}
