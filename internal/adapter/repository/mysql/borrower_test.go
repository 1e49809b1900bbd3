package mysql

import (
	"context"
	"errors"
	"testing"

	borrowerDomain "microfinance-backoffice/internal/domain/borrower"
	"microfinance-backoffice/pkg/id"

	"gorm.io/gorm"
)

func makeBorrower(businessID, nrc string) *borrowerDomain.Borrower {
	return &borrowerDomain.Borrower{
		BorrowerID: id.NewID32(),
		BusinessID: businessID,
		NRCNumber:  nrc,
		Name:       "Mwila Banda",
		Gender:     "female",
		Location:   "Lusaka",
		Mobile:     "+260 971 000000",
	}
}

func TestBorrower_CreateAndLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	b := makeBorrower(bizA, "123456/10/1")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByBorrowerID(ctx, bizA, b.BorrowerID)
	if err != nil {
		t.Fatalf("GetByBorrowerID: %v", err)
	}
	if byID.NRCNumber != "123456/10/1" {
		t.Errorf("unexpected borrower: %+v", byID)
	}

	byNRC, err := repo.GetByNRC(ctx, bizA, "123456/10/1")
	if err != nil {
		t.Fatalf("GetByNRC: %v", err)
	}
	if byNRC.BorrowerID != b.BorrowerID {
		t.Errorf("GetByNRC returned %s, want %s", byNRC.BorrowerID, b.BorrowerID)
	}

	// tenant isolation
	if _, err := repo.GetByNRC(ctx, bizB, "123456/10/1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for other business, got %v", err)
	}
}

func TestBorrower_NRCUniquePerBusiness(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeBorrower(bizA, "999999/99/9")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeBorrower(bizA, "999999/99/9")); err == nil {
		t.Fatalf("expected unique violation for duplicate NRC in one business")
	}
	if err := repo.Create(ctx, makeBorrower(bizB, "999999/99/9")); err != nil {
		t.Fatalf("same NRC in another business must be allowed: %v", err)
	}
}
