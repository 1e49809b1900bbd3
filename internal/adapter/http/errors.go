package http

import (
	"errors"
	"log/slog"
	"net/http"

	"microfinance-backoffice/internal/domain/borrower"
	"microfinance-backoffice/internal/domain/loan"
	"microfinance-backoffice/internal/domain/repayment"
	"microfinance-backoffice/internal/domain/standing"
	"microfinance-backoffice/pkg/id"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors → HTTP codes in one place.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, standing.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, borrower.ErrNotFound), errors.Is(err, loan.ErrNotFound),
		errors.Is(err, repayment.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, borrower.ErrAlreadyExists), errors.Is(err, loan.ErrLoanClosed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "err", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func pathID(c echo.Context, name string) (string, bool) {
	v := c.Param(name)
	return v, id.Valid(v)
}
