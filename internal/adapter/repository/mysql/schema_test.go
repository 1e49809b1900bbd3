package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM / engine specifics) ---

type borrowerSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id;autoIncrement"`
	BorrowerID string         `gorm:"size:32;uniqueIndex;column:borrower_id"`
	BusinessID string         `gorm:"size:32;column:business_id;uniqueIndex:ux_business_nrc"`
	NRCNumber  string         `gorm:"size:32;column:nrc_number;uniqueIndex:ux_business_nrc"`
	Name       string         `gorm:"column:name"`
	Gender     string         `gorm:"column:gender"`
	Location   string         `gorm:"column:location"`
	Mobile     string         `gorm:"column:mobile"`
	Occupation string         `gorm:"column:occupation"`
	BirthDate  *time.Time     `gorm:"column:birth_date"`
	Notes      string         `gorm:"column:notes"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (borrowerSQLite) TableName() string { return "borrowers" }

type loanSQLite struct {
	ID               uint64          `gorm:"primaryKey;column:id"`
	LoanID           string          `gorm:"size:32;column:loan_id"`
	BusinessID       string          `gorm:"size:32;column:business_id"`
	BorrowerID       string          `gorm:"size:32;column:borrower_id"`
	Amount           decimal.Decimal `gorm:"type:numeric;column:amount"`
	InterestRate     decimal.Decimal `gorm:"type:numeric;column:interest_rate"`
	TransactionCosts decimal.Decimal `gorm:"type:numeric;column:transaction_costs"`
	DurationDays     int             `gorm:"column:duration_days"`
	DueDate          *time.Time      `gorm:"column:due_date"`
	LoanReason       string          `gorm:"column:loan_reason"`
	Status           string          `gorm:"type:text;column:status"` // ← no enum
	StatusUpdatedAt  time.Time       `gorm:"column:status_updated_at"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"column:deleted_at"`
	DeletedBy        string          `gorm:"column:deleted_by"`
}

func (loanSQLite) TableName() string { return "loans" }

type repaymentSQLite struct {
	ID            uint64          `gorm:"primaryKey;column:id;autoIncrement"`
	RepaymentID   string          `gorm:"size:64;uniqueIndex;column:repayment_id"`
	LoanID        uint64          `gorm:"column:loan_id"`
	BusinessID    string          `gorm:"column:business_id"`
	Amount        decimal.Decimal `gorm:"type:numeric;column:amount"`
	Discount      decimal.Decimal `gorm:"type:numeric;column:discount"`
	RepaymentDate time.Time       `gorm:"column:repayment_date"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (repaymentSQLite) TableName() string { return "repayments" }

type disbursementSQLite struct {
	ID         uint64          `gorm:"primaryKey;column:id"`
	LoanID     uint64          `gorm:"column:loan_id"`
	BusinessID string          `gorm:"column:business_id"`
	Amount     decimal.Decimal `gorm:"type:numeric;column:amount"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (disbursementSQLite) TableName() string { return "disbursements" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(&borrowerSQLite{}, &loanSQLite{}, &repaymentSQLite{}, &disbursementSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
