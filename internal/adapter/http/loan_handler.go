package http

import (
	"net/http"
	"strings"

	"microfinance-backoffice/internal/adapter/middleware"
	"microfinance-backoffice/internal/usecase/borrower"
	"microfinance-backoffice/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct {
	uc   *loan.Usecase
	info *borrower.Usecase
}

func NewLoanHandler(uc *loan.Usecase, info *borrower.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, info: info}
}

type createLoanReq struct {
	NRCNumber        string          `json:"nrc_number"        validate:"required,nrc"`
	Amount           decimal.Decimal `json:"amount"            validate:"gt=0,dec2"`
	InterestRate     decimal.Decimal `json:"interest_rate"     validate:"gte=0,lte=100,dec2"`
	TransactionCosts decimal.Decimal `json:"transaction_costs" validate:"gte=0,dec2"`
	DurationDays     int             `json:"duration_days"     validate:"gte=0"`
	// Accepts a date or a timestamp; parsed by the usecase
	DueDate    string `json:"due_date"`
	LoanReason string `json:"loan_reason" validate:"max=255"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BusinessID:       middleware.BusinessID(c),
		NRCNumber:        req.NRCNumber,
		Amount:           req.Amount,
		InterestRate:     req.InterestRate,
		TransactionCosts: req.TransactionCosts,
		DurationDays:     req.DurationDays,
		DueDate:          req.DueDate,
		LoanReason:       req.LoanReason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, ok := pathID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), middleware.BusinessID(c), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListRepayable lists a borrower's open loans by NRC number (?nrc=).
func (h *LoanHandler) ListRepayable(c echo.Context) error {
	nrc := strings.TrimSpace(c.QueryParam("nrc"))
	if nrc == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing nrc query param"})
	}
	out, err := h.uc.ListRepayable(c.Request().Context(), middleware.BusinessID(c), nrc)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Standing(c echo.Context) error {
	loanID, ok := pathID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	res, err := h.info.PaymentHistory(c.Request().Context(), middleware.BusinessID(c), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// SweepOverdue runs the overdue detection immediately.
func (h *LoanHandler) SweepOverdue(c echo.Context) error {
	res, err := h.uc.SweepOverdue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
