package mysql

import (
	"context"

	repaymentDomain "microfinance-backoffice/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) Create(ctx context.Context, p *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("repayment_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) ListByLoanIDs(ctx context.Context, loanNumericIDs []uint64) ([]repaymentDomain.Repayment, error) {
	if len(loanNumericIDs) == 0 {
		return nil, nil
	}
	var out []repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id IN ?", loanNumericIDs).
		Order("repayment_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("repayment_id = ?", repaymentID).
		First(&out)
	return &out, res.Error
}
