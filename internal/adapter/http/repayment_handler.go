package http

import (
	"net/http"
	"time"

	"microfinance-backoffice/internal/adapter/middleware"
	"microfinance-backoffice/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type submitRepaymentReq struct {
	Amount   decimal.Decimal `json:"amount"   validate:"gte=0,dec2"`
	Discount decimal.Decimal `json:"discount" validate:"gte=0,dec2"`
	// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
	RepaymentDate string `json:"repayment_date" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status"         validate:"required,loanstatus"`
}

func (h *RepaymentHandler) SubmitRepayment(c echo.Context) error {
	// Validate path param
	loanID, ok := pathID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	// Bind + validate body payload JSON
	var req submitRepaymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	paidOn, _ := time.Parse("2006-01-02", req.RepaymentDate)

	dto, err := h.uc.Submit(c.Request().Context(), repayment.SubmitInput{
		BusinessID:    middleware.BusinessID(c),
		LoanID:        loanID,
		Amount:        req.Amount,
		Discount:      req.Discount,
		RepaymentDate: paidOn,
		Status:        req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) ListRepayments(c echo.Context) error {
	loanID, ok := pathID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	out, err := h.uc.List(c.Request().Context(), middleware.BusinessID(c), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RepaymentHandler) GetRepayment(c echo.Context) error {
	loanID, ok := pathID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	repaymentID, ok := pathID(c, "repayment_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid repayment_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), middleware.BusinessID(c), loanID, repaymentID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
