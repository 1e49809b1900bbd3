package repayment

import (
	"errors"
	"time"

	"microfinance-backoffice/internal/domain/standing"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("repayment not found")
)

// Table: repayments
type Repayment struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	RepaymentID string `gorm:"column:repayment_id;type:char(32);not null;uniqueIndex:ux_repayments_repayment_id"`
	// FK to loans.id (numeric)
	LoanID        uint64          `gorm:"column:loan_id;not null;index"`
	BusinessID    string          `gorm:"column:business_id;type:char(32);not null;index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null"`
	Discount      decimal.Decimal `gorm:"column:discount;type:decimal(18,2);not null;default:0"`
	RepaymentDate time.Time       `gorm:"column:repayment_date;type:date;not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Repayment) TableName() string { return "repayments" }

// Record converts the row for the classification engine; publicLoanID is the
// owning loan's 32-char id.
func (r *Repayment) Record(publicLoanID string) standing.RepaymentRecord {
	return standing.RepaymentRecord{
		LoanID:        publicLoanID,
		Amount:        r.Amount,
		Discount:      r.Discount,
		RepaymentDate: r.RepaymentDate,
	}
}
