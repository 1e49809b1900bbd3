package middleware

import (
	"net/http"
	"strings"

	"microfinance-backoffice/pkg/id"

	"github.com/labstack/echo/v4"
)

const (
	HeaderBusinessID = "Ax-Business-Id"
	businessIDKey    = "business_id"
)

// TenantMiddleware requires every request to name the business it acts for
// and stores the id on the echo context.
func TenantMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bid, msg := tenantFromRequest(c.Request())
			if msg != "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
			}
			c.Set(businessIDKey, bid)
			return next(c)
		}
	}
}

// BusinessID returns the tenant set by TenantMiddleware, or "" outside it.
func BusinessID(c echo.Context) string {
	if v, ok := c.Get(businessIDKey).(string); ok {
		return v
	}
	return ""
}

func tenantFromRequest(req *http.Request) (string, string) {
	bid := strings.TrimSpace(req.Header.Get(HeaderBusinessID))
	if bid == "" {
		return "", "missing " + HeaderBusinessID
	}
	if !id.Valid(bid) {
		return "", "invalid " + HeaderBusinessID
	}
	return bid, ""
}
