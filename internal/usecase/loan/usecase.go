package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainBorrower "microfinance-backoffice/internal/domain/borrower"
	domainLoan "microfinance-backoffice/internal/domain/loan"
	"microfinance-backoffice/internal/domain/standing"
	"microfinance-backoffice/internal/domain/uow"
	"microfinance-backoffice/pkg/id"

	"gorm.io/gorm"
)

// SweepRecorder receives the outcome of each overdue sweep.
type SweepRecorder interface {
	OverdueSweepFinished(transitioned int64, skipped int, err error)
}

type Usecase struct {
	loans     domainLoan.Repository
	borrowers domainBorrower.Repository
	uow       uow.UnitOfWork
	recorder  SweepRecorder
	log       *slog.Logger
	now       func() time.Time
}

func NewUsecase(loans domainLoan.Repository, borrowers domainBorrower.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		loans:     loans,
		borrowers: borrowers,
		uow:       tx,
		log:       slog.Default(),
		now:       time.Now,
	}
}

func (u *Usecase) WithRecorder(r SweepRecorder) *Usecase {
	u.recorder = r
	return u
}

func (u *Usecase) WithLogger(l *slog.Logger) *Usecase {
	if l != nil {
		u.log = l
	}
	return u
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if strings.TrimSpace(in.NRCNumber) == "" || !in.Amount.IsPositive() ||
		in.InterestRate.IsNegative() || in.TransactionCosts.IsNegative() || in.DurationDays < 0 {
		return nil, fmt.Errorf("%w: loan terms", standing.ErrInvalidInput)
	}

	now := u.now().UTC()
	var due time.Time
	switch {
	case in.DueDate != "":
		parsed, err := standing.ParseDueDate(in.DueDate)
		if err != nil {
			return nil, err
		}
		due = parsed
	case in.DurationDays > 0:
		due = now.AddDate(0, 0, in.DurationDays)
	default:
		return nil, fmt.Errorf("%w: due date or duration is required", standing.ErrInvalidInput)
	}

	var l *domainLoan.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Borrowers.GetByNRC(ctx, in.BusinessID, strings.TrimSpace(in.NRCNumber))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainBorrower.ErrNotFound
			}
			return err
		}

		l = &domainLoan.Loan{
			LoanID:           id.NewID32(),
			BusinessID:       in.BusinessID,
			BorrowerID:       b.BorrowerID,
			Amount:           in.Amount,
			InterestRate:     in.InterestRate,
			TransactionCosts: in.TransactionCosts,
			DurationDays:     in.DurationDays,
			DueDate:          &due,
			LoanReason:       in.LoanReason,
			Status:           domainLoan.StatusActive,
			StatusUpdatedAt:  now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		return r.Loans.CreateDisbursement(ctx, &domainLoan.Disbursement{
			LoanID:     l.ID,
			BusinessID: in.BusinessID,
			Amount:     in.Amount,
		})
	})
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, businessID, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, businessID, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

// ListRepayable returns the borrower's loans that can still take repayments.
func (u *Usecase) ListRepayable(ctx context.Context, businessID, nrc string) ([]LoanDTO, error) {
	b, err := u.borrowers.GetByNRC(ctx, businessID, strings.TrimSpace(nrc))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBorrower.ErrNotFound
		}
		return nil, err
	}
	ls, err := u.loans.ListByBorrowerAndStatus(ctx, businessID, b.BorrowerID,
		domainLoan.StatusActive, domainLoan.StatusOverdue, domainLoan.StatusDefault)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// SweepOverdue moves every Active loan whose due date has passed to Overdue.
// Loans with unusable due dates are logged and left alone.
func (u *Usecase) SweepOverdue(ctx context.Context) (res SweepResult, err error) {
	defer func() {
		if u.recorder != nil {
			u.recorder.OverdueSweepFinished(res.Transitioned, res.Skipped, err)
		}
	}()

	active, err := u.loans.ListByStatus(ctx, domainLoan.StatusActive)
	if err != nil {
		return SweepResult{}, err
	}
	report := standing.DetectOverdue(domainLoan.Records(active), u.now())
	res.Checked = len(active)
	res.Skipped = len(report.Skipped)

	for _, s := range report.Skipped {
		u.log.WarnContext(ctx, "overdue sweep skipped loan", "loan_id", s.ID, "reason", s.Reason)
	}
	if len(report.Overdue) == 0 {
		return res, nil
	}

	n, err := u.loans.UpdateStatus(ctx, report.Overdue, domainLoan.StatusActive, domainLoan.StatusOverdue)
	if err != nil {
		return res, err
	}
	res.Transitioned = n
	u.log.InfoContext(ctx, "overdue sweep finished", "checked", res.Checked, "transitioned", n, "skipped", res.Skipped)
	return res, nil
}

func toDTO(l *domainLoan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:           l.LoanID,
		BorrowerID:       l.BorrowerID,
		Amount:           l.Amount,
		InterestRate:     l.InterestRate,
		TransactionCosts: l.TransactionCosts,
		DurationDays:     l.DurationDays,
		DueDate:          l.DueDate,
		LoanReason:       l.LoanReason,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
	}
}
