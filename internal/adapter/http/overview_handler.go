package http

import (
	"net/http"
	"strings"

	"microfinance-backoffice/internal/adapter/middleware"
	"microfinance-backoffice/internal/usecase/overview"

	"github.com/labstack/echo/v4"
)

type OverviewHandler struct{ uc *overview.Usecase }

func NewOverviewHandler(uc *overview.Usecase) *OverviewHandler {
	return &OverviewHandler{uc: uc}
}

// Summary serves the portfolio headline figures. ?days= takes 7, 30, 90,
// 180, 365, current_month or current_year.
func (h *OverviewHandler) Summary(c echo.Context) error {
	dto, err := h.uc.Summary(c.Request().Context(), middleware.BusinessID(c), strings.TrimSpace(c.QueryParam("days")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
