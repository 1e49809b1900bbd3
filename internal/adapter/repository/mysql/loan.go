package mysql

import (
	"context"

	loanDomain "microfinance-backoffice/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, businessID, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND loan_id = ?", businessID, loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, businessID, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("business_id = ? AND loan_id = ?", businessID, loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByBorrower(ctx context.Context, businessID, borrowerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND borrower_id = ?", businessID, borrowerID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListRecentByBorrower(ctx context.Context, businessID, borrowerID string, limit int) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND borrower_id = ?", businessID, borrowerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByBorrowerAndStatus(ctx context.Context, businessID, borrowerID string, statuses ...loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND borrower_id = ? AND status IN ?", businessID, borrowerID, statuses).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) UpdateStatus(ctx context.Context, loanIDs []string, from, to loanDomain.Status) (int64, error) {
	if len(loanIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id IN ? AND status = ?", loanIDs, from).
		Updates(map[string]any{"status": to, "status_updated_at": nowUTC()})
	return res.RowsAffected, res.Error
}

func (r *LoanRepository) CreateDisbursement(ctx context.Context, d *loanDomain.Disbursement) error {
	return r.db.WithContext(ctx).Create(d).Error
}
