package mysql

import (
	"context"

	borrowerDomain "microfinance-backoffice/internal/domain/borrower"

	"gorm.io/gorm"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) GetByBorrowerID(ctx context.Context, businessID, borrowerID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND borrower_id = ?", businessID, borrowerID).
		First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) GetByNRC(ctx context.Context, businessID, nrc string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND nrc_number = ?", businessID, nrc).
		First(&out)
	return &out, res.Error
}
