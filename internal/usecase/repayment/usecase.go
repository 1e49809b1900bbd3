package repayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainLoan "microfinance-backoffice/internal/domain/loan"
	domainRepayment "microfinance-backoffice/internal/domain/repayment"
	"microfinance-backoffice/internal/domain/standing"
	"microfinance-backoffice/internal/domain/uow"
	"microfinance-backoffice/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SettlementRecorder is told about every repayment that was committed.
type SettlementRecorder interface {
	SettlementRecorded(amount, discount decimal.Decimal)
}

type Usecase struct {
	uow        uow.UnitOfWork
	loans      domainLoan.Repository
	repayments domainRepayment.Repository
	recorder   SettlementRecorder
	now        func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, loans domainLoan.Repository, repayments domainRepayment.Repository) *Usecase {
	return &Usecase{uow: tx, loans: loans, repayments: repayments, now: time.Now}
}

func (u *Usecase) WithRecorder(r SettlementRecorder) *Usecase {
	u.recorder = r
	return u
}

// Submit applies a repayment to a loan under the loan's row lock. The balance
// arithmetic runs before any write, so a rejected amount leaves no trace.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RepaymentDTO, error) {
	target := domainLoan.Status(in.Status)
	if in.LoanID == "" || !target.Valid() || target == domainLoan.StatusPending {
		return nil, fmt.Errorf("%w: loan id and a loan status are required", standing.ErrInvalidInput)
	}
	if in.RepaymentDate.IsZero() {
		return nil, fmt.Errorf("%w: repayment date is required", standing.ErrInvalidInput)
	}

	var dto *RepaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.BusinessID, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Closed() {
			return domainLoan.ErrLoanClosed
		}

		res, err := standing.Settle(l.Amount, in.Amount, in.Discount, standing.Status(target))
		if err != nil {
			return err
		}

		rp := &domainRepayment.Repayment{
			RepaymentID:   id.NewID32(),
			LoanID:        l.ID, // numeric FK
			BusinessID:    l.BusinessID,
			Amount:        in.Amount,
			Discount:      in.Discount,
			RepaymentDate: in.RepaymentDate.UTC(),
		}
		if err := r.Repayments.Create(ctx, rp); err != nil {
			return err
		}

		l.Amount = res.UpdatedAmount
		if next := domainLoan.Status(res.NewStatus); next != l.Status {
			l.Status = next
			l.StatusUpdatedAt = u.now().UTC()
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &RepaymentDTO{
			RepaymentID:   rp.RepaymentID,
			LoanID:        l.LoanID, // public id
			Amount:        rp.Amount,
			Discount:      rp.Discount,
			RepaymentDate: rp.RepaymentDate,
			UpdatedAmount: l.Amount,
			LoanStatus:    string(l.Status),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	if u.recorder != nil {
		u.recorder.SettlementRecorded(dto.Amount, dto.Discount)
	}
	return dto, nil
}
