package loan

import (
	"errors"
	"time"

	"microfinance-backoffice/internal/domain/standing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusActive    Status = Status(standing.StatusActive)
	StatusOverdue   Status = Status(standing.StatusOverdue)
	StatusDefault   Status = Status(standing.StatusDefault)
	StatusCompleted Status = Status(standing.StatusCompleted)
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusOverdue, StatusDefault, StatusCompleted:
		return true
	}
	return false
}

var (
	ErrNotFound   = errors.New("loan not found")
	ErrLoanClosed = errors.New("loan is already completed")
)

type Loan struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID           string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	BusinessID       string          `gorm:"size:32;index:idx_loans_business_borrower" json:"business_id"`
	BorrowerID       string          `gorm:"size:32;index:idx_loans_business_borrower" json:"borrower_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TransactionCosts decimal.Decimal `gorm:"type:decimal(18,2)" json:"transaction_costs"`
	DurationDays     int             `json:"duration_days"`
	DueDate          *time.Time      `gorm:"index" json:"due_date"`
	LoanReason       string          `gorm:"size:255" json:"loan_reason"`
	Status           Status          `gorm:"type:enum('Pending','Active','Overdue','Default','Completed');default:'Active';index" json:"status"`
	StatusUpdatedAt  time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
	DeletedBy        string          `gorm:"size:32" json:"-"`
}

func (Loan) TableName() string { return "loans" }

func (l *Loan) Closed() bool { return l.Status == StatusCompleted }

// Record converts the row into the classification engine's input.
func (l *Loan) Record() standing.LoanRecord {
	r := standing.LoanRecord{
		ID:           l.LoanID,
		BorrowerID:   l.BorrowerID,
		Amount:       l.Amount,
		InterestRate: l.InterestRate,
		Status:       standing.Status(l.Status),
		DueDate:      l.DueDate,
	}
	if !l.CreatedAt.IsZero() {
		c := l.CreatedAt
		r.CreatedAt = &c
	}
	return r
}

func Records(ls []Loan) []standing.LoanRecord {
	out := make([]standing.LoanRecord, 0, len(ls))
	for i := range ls {
		out = append(out, ls[i].Record())
	}
	return out
}

// Disbursement records the cash paid out when a loan is issued.
type Disbursement struct {
	ID         uint64          `gorm:"primaryKey;column:id"`
	LoanID     uint64          `gorm:"column:loan_id;not null;index"`
	BusinessID string          `gorm:"column:business_id;size:32;index"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(18,2)"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Disbursement) TableName() string { return "disbursements" }
