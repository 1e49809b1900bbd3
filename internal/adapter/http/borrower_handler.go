package http

import (
	"net/http"
	"strings"
	"time"

	"microfinance-backoffice/internal/adapter/middleware"
	"microfinance-backoffice/internal/usecase/borrower"

	"github.com/labstack/echo/v4"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type registerBorrowerReq struct {
	Name       string `json:"name"        validate:"required,max=128"`
	NRCNumber  string `json:"nrc_number"  validate:"required,nrc,max=32"`
	Gender     string `json:"gender"      validate:"omitempty,max=16"`
	Location   string `json:"location"    validate:"omitempty,max=128"`
	Mobile     string `json:"mobile"      validate:"omitempty,mobile"`
	Occupation string `json:"occupation"  validate:"omitempty,max=128"`
	BirthDate  string `json:"birth_date"  validate:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes"`
}

func (h *BorrowerHandler) Register(c echo.Context) error {
	var req registerBorrowerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	in := borrower.RegisterInput{
		BusinessID: middleware.BusinessID(c),
		Name:       req.Name,
		NRCNumber:  req.NRCNumber,
		Gender:     req.Gender,
		Location:   req.Location,
		Mobile:     req.Mobile,
		Occupation: req.Occupation,
		Notes:      req.Notes,
	}
	if req.BirthDate != "" {
		// already validated against the layout
		bd, _ := time.Parse("2006-01-02", req.BirthDate)
		in.BirthDate = &bd
	}

	dto, err := h.uc.Register(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Lookup finds a borrower by NRC number (?nrc=).
func (h *BorrowerHandler) Lookup(c echo.Context) error {
	nrc := strings.TrimSpace(c.QueryParam("nrc"))
	if nrc == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing nrc query param"})
	}
	dto, err := h.uc.GetByNRC(c.Request().Context(), middleware.BusinessID(c), nrc)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), middleware.BusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) Risk(c echo.Context) error {
	id, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id path param"})
	}
	res, err := h.uc.RiskAssessment(c.Request().Context(), middleware.BusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *BorrowerHandler) Outstanding(c echo.Context) error {
	id, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id path param"})
	}
	dto, err := h.uc.OutstandingDebts(c.Request().Context(), middleware.BusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) Account(c echo.Context) error {
	id, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id path param"})
	}
	dto, err := h.uc.AccountStatus(c.Request().Context(), middleware.BusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) History(c echo.Context) error {
	id, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id path param"})
	}
	out, err := h.uc.RecentHistory(c.Request().Context(), middleware.BusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
