package repayment

import (
	"context"
	"errors"

	domainLoan "microfinance-backoffice/internal/domain/loan"
	domainRepayment "microfinance-backoffice/internal/domain/repayment"

	"gorm.io/gorm"
)

// List returns a loan's repayments, newest first.
func (u *Usecase) List(ctx context.Context, businessID, loanID string) ([]RepaymentItemDTO, error) {
	l, err := u.loan(ctx, businessID, loanID)
	if err != nil {
		return nil, err
	}
	rows, err := u.repayments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]RepaymentItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toItem(&rows[i], l.LoanID))
	}
	return out, nil
}

// Get returns one repayment. A repayment filed under another loan or
// business is reported as not found.
func (u *Usecase) Get(ctx context.Context, businessID, loanID, repaymentID string) (*RepaymentItemDTO, error) {
	l, err := u.loan(ctx, businessID, loanID)
	if err != nil {
		return nil, err
	}
	rp, err := u.repayments.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepayment.ErrNotFound
		}
		return nil, err
	}
	if rp.LoanID != l.ID || rp.BusinessID != businessID {
		return nil, domainRepayment.ErrNotFound
	}
	item := toItem(rp, l.LoanID)
	return &item, nil
}

func (u *Usecase) loan(ctx context.Context, businessID, loanID string) (*domainLoan.Loan, error) {
	l, err := u.loans.GetByLoanID(ctx, businessID, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func toItem(rp *domainRepayment.Repayment, publicLoanID string) RepaymentItemDTO {
	return RepaymentItemDTO{
		RepaymentID:   rp.RepaymentID,
		LoanID:        publicLoanID,
		Amount:        rp.Amount,
		Discount:      rp.Discount,
		RepaymentDate: rp.RepaymentDate,
		CreatedAt:     rp.CreatedAt,
	}
}
