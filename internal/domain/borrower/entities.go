package borrower

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("borrower not found")
	ErrAlreadyExists = errors.New("borrower already registered")
)

// Table: borrowers. NRC numbers are unique within a business.
type Borrower struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	BorrowerID string         `gorm:"column:borrower_id;type:char(32);not null;uniqueIndex:ux_borrowers_borrower_id" json:"borrower_id"`
	BusinessID string         `gorm:"column:business_id;type:char(32);not null;uniqueIndex:ux_borrowers_business_nrc" json:"business_id"`
	NRCNumber  string         `gorm:"column:nrc_number;size:32;not null;uniqueIndex:ux_borrowers_business_nrc" json:"nrc_number"`
	Name       string         `gorm:"column:name;size:128;not null" json:"name"`
	Gender     string         `gorm:"column:gender;size:16" json:"gender,omitempty"`
	Location   string         `gorm:"column:location;size:128" json:"location,omitempty"`
	Mobile     string         `gorm:"column:mobile;size:32" json:"mobile,omitempty"`
	Occupation string         `gorm:"column:occupation;size:128" json:"occupation,omitempty"`
	BirthDate  *time.Time     `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	Notes      string         `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }
