package borrower

import (
	"context"
	"errors"
	"sort"

	domainLoan "microfinance-backoffice/internal/domain/loan"
	"microfinance-backoffice/internal/domain/standing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const recentLoanLimit = 3

var creditLimitFactor = decimal.NewFromFloat(2.5)

// PaymentHistory classifies a single loan's repayment standing.
func (u *Usecase) PaymentHistory(ctx context.Context, businessID, loanID string) (standing.StandingResult, error) {
	if loanID == "" {
		return u.engine.ClassifyStanding("", 0, nil), nil
	}
	l, err := u.loans.GetByLoanID(ctx, businessID, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return standing.StandingResult{}, domainLoan.ErrNotFound
		}
		return standing.StandingResult{}, err
	}

	rows, err := u.repayments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return standing.StandingResult{}, err
	}
	records := make([]standing.RepaymentRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].Record(l.LoanID))
	}

	due := standing.DueObligations(l.Record(), u.now())
	return u.engine.ClassifyStanding(l.LoanID, due, records), nil
}

func (u *Usecase) RiskAssessment(ctx context.Context, businessID, borrowerID string) (standing.RiskResult, error) {
	loans, err := u.borrowerLoans(ctx, businessID, borrowerID)
	if err != nil {
		return standing.RiskResult{}, err
	}
	return u.engine.ClassifyRisk(domainLoan.Records(loans)), nil
}

func (u *Usecase) OutstandingDebts(ctx context.Context, businessID, borrowerID string) (*OutstandingDebtsDTO, error) {
	loans, err := u.borrowerLoans(ctx, businessID, borrowerID)
	if err != nil {
		return nil, err
	}

	out := &OutstandingDebtsDTO{TotalOutstanding: decimal.Zero}
	for i := range loans {
		l := &loans[i]
		if l.Status == domainLoan.StatusCompleted {
			continue
		}
		out.TotalOutstanding = out.TotalOutstanding.Add(l.Amount)
		if l.Status != domainLoan.StatusDefault {
			out.ActiveLoans++
		}
		if l.DueDate != nil && (out.EarliestDueDate == nil || l.DueDate.Before(*out.EarliestDueDate)) {
			d := *l.DueDate
			out.EarliestDueDate = &d
		}
	}
	return out, nil
}

func (u *Usecase) AccountStatus(ctx context.Context, businessID, borrowerID string) (*AccountStatusDTO, error) {
	loans, err := u.borrowerLoans(ctx, businessID, borrowerID)
	if err != nil {
		return nil, err
	}

	out := &AccountStatusDTO{
		TotalLoaned:         decimal.Zero,
		TotalRepaid:         decimal.Zero,
		CreditLimit:         decimal.Zero,
		TotalInterestIncome: decimal.Zero,
	}
	if len(loans) == 0 {
		return out, nil
	}

	for i := range loans {
		out.TotalLoaned = out.TotalLoaned.Add(loans[i].Amount)
		if c := loans[i].CreatedAt; !c.IsZero() && (out.LastContractDate == nil || c.After(*out.LastContractDate)) {
			out.LastContractDate = &c
		}
	}

	repaid, err := u.repaidByLoan(ctx, loans)
	if err != nil {
		return nil, err
	}
	for _, v := range repaid {
		out.TotalRepaid = out.TotalRepaid.Add(v)
	}
	out.CreditLimit = out.TotalRepaid.Mul(creditLimitFactor)
	out.TotalInterestIncome = out.TotalRepaid.Sub(out.TotalLoaned)
	return out, nil
}

// RecentHistory lists the borrower's latest loans, newest first.
func (u *Usecase) RecentHistory(ctx context.Context, businessID, borrowerID string) ([]LoanHistoryDTO, error) {
	if _, err := u.Get(ctx, businessID, borrowerID); err != nil {
		return nil, err
	}
	loans, err := u.loans.ListRecentByBorrower(ctx, businessID, borrowerID, recentLoanLimit)
	if err != nil {
		return nil, err
	}
	repaid, err := u.repaidByLoan(ctx, loans)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	out := make([]LoanHistoryDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		paid, ok := repaid[l.ID]
		if !ok {
			paid = decimal.Zero
		}
		interest := l.Amount.Mul(l.InterestRate).Div(hundred)
		out = append(out, LoanHistoryDTO{
			LoanID:       l.LoanID,
			StartDate:    l.CreatedAt,
			EndDate:      l.DueDate,
			Amount:       l.Amount,
			InterestRate: l.InterestRate.String() + "%",
			Status:       string(l.Status),
			RepaidAmount: paid,
			Balance:      l.Amount.Add(interest).Sub(paid).Round(2),
		})
	}
	return out, nil
}

func (u *Usecase) borrowerLoans(ctx context.Context, businessID, borrowerID string) ([]domainLoan.Loan, error) {
	if _, err := u.Get(ctx, businessID, borrowerID); err != nil {
		return nil, err
	}
	return u.loans.ListByBorrower(ctx, businessID, borrowerID)
}

// repaidByLoan sums repayment amounts per numeric loan id.
func (u *Usecase) repaidByLoan(ctx context.Context, loans []domainLoan.Loan) (map[uint64]decimal.Decimal, error) {
	sums := make(map[uint64]decimal.Decimal, len(loans))
	if len(loans) == 0 {
		return sums, nil
	}
	ids := make([]uint64, 0, len(loans))
	for i := range loans {
		ids = append(ids, loans[i].ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows, err := u.repayments.ListByLoanIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		cur, ok := sums[rows[i].LoanID]
		if !ok {
			cur = decimal.Zero
		}
		sums[rows[i].LoanID] = cur.Add(rows[i].Amount)
	}
	return sums, nil
}
