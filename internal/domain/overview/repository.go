package overview

import "context"

type Repository interface {
	Totals(ctx context.Context, businessID string, w Window) (*Totals, error)
}
