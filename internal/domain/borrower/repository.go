package borrower

import "context"

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByBorrowerID(ctx context.Context, businessID, borrowerID string) (*Borrower, error)
	GetByNRC(ctx context.Context, businessID, nrc string) (*Borrower, error)
}
