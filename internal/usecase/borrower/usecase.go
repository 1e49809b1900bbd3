package borrower

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	domainBorrower "microfinance-backoffice/internal/domain/borrower"
	domainLoan "microfinance-backoffice/internal/domain/loan"
	domainRepayment "microfinance-backoffice/internal/domain/repayment"
	"microfinance-backoffice/internal/domain/standing"
	"microfinance-backoffice/pkg/id"

	"gorm.io/gorm"
)

const minNRCLength = 6

var mobilePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]{7,15}$`)

type Usecase struct {
	borrowers  domainBorrower.Repository
	loans      domainLoan.Repository
	repayments domainRepayment.Repository
	engine     *standing.Engine
	now        func() time.Time
}

func NewUsecase(borrowers domainBorrower.Repository, loans domainLoan.Repository, repayments domainRepayment.Repository, engine *standing.Engine) *Usecase {
	if engine == nil {
		engine = standing.NewEngine()
	}
	return &Usecase{
		borrowers:  borrowers,
		loans:      loans,
		repayments: repayments,
		engine:     engine,
		now:        time.Now,
	}
}

func validateRegistration(in RegisterInput) error {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name is required")
	}
	nrc := strings.TrimSpace(in.NRCNumber)
	switch {
	case nrc == "":
		problems = append(problems, "nrc number is required")
	case len(nrc) < minNRCLength:
		problems = append(problems, "nrc number is too short")
	}
	if m := strings.TrimSpace(in.Mobile); m != "" && !mobilePattern.MatchString(m) {
		problems = append(problems, "mobile number format is invalid")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", standing.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*BorrowerDTO, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}
	nrc := strings.TrimSpace(in.NRCNumber)

	switch _, err := u.borrowers.GetByNRC(ctx, in.BusinessID, nrc); {
	case err == nil:
		return nil, domainBorrower.ErrAlreadyExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	b := &domainBorrower.Borrower{
		BorrowerID: id.NewID32(),
		BusinessID: in.BusinessID,
		NRCNumber:  nrc,
		Name:       strings.TrimSpace(in.Name),
		Gender:     in.Gender,
		Location:   in.Location,
		Mobile:     strings.TrimSpace(in.Mobile),
		Occupation: in.Occupation,
		BirthDate:  in.BirthDate,
		Notes:      in.Notes,
	}
	if err := u.borrowers.Create(ctx, b); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainBorrower.ErrAlreadyExists
		}
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, businessID, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.borrowers.GetByBorrowerID(ctx, businessID, borrowerID)
	if err != nil {
		return nil, notFound(err)
	}
	return toDTO(b), nil
}

func (u *Usecase) GetByNRC(ctx context.Context, businessID, nrc string) (*BorrowerDTO, error) {
	b, err := u.borrowers.GetByNRC(ctx, businessID, strings.TrimSpace(nrc))
	if err != nil {
		return nil, notFound(err)
	}
	return toDTO(b), nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainBorrower.ErrNotFound
	}
	return err
}

func toDTO(b *domainBorrower.Borrower) *BorrowerDTO {
	return &BorrowerDTO{
		BorrowerID: b.BorrowerID,
		Name:       b.Name,
		NRCNumber:  b.NRCNumber,
		Gender:     b.Gender,
		Location:   b.Location,
		Mobile:     b.Mobile,
		Occupation: b.Occupation,
		BirthDate:  b.BirthDate,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
	}
}
