package http

import (
	"net/http"

	"microfinance-backoffice/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

type Routes struct {
	Health     *Handler
	Borrowers  *BorrowerHandler
	Loans      *LoanHandler
	Repayments *RepaymentHandler
	Overview   *OverviewHandler
	// Served at /metrics when set
	Metrics http.Handler
	// Applied to tenant routes after the tenant check, e.g. idempotency
	Middleware []echo.MiddlewareFunc
}

func Register(e *echo.Echo, r Routes) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}

	mws := append([]echo.MiddlewareFunc{middleware.TenantMiddleware()}, r.Middleware...)
	g := e.Group("", mws...)

	g.POST("/borrowers", r.Borrowers.Register)
	g.GET("/borrowers", r.Borrowers.Lookup)
	g.GET("/borrowers/:borrower_id", r.Borrowers.Get)
	g.GET("/borrowers/:borrower_id/risk", r.Borrowers.Risk)
	g.GET("/borrowers/:borrower_id/outstanding", r.Borrowers.Outstanding)
	g.GET("/borrowers/:borrower_id/account", r.Borrowers.Account)
	g.GET("/borrowers/:borrower_id/history", r.Borrowers.History)

	g.POST("/loans", r.Loans.CreateLoan)
	g.GET("/loans", r.Loans.ListRepayable)
	g.GET("/loans/:loan_id", r.Loans.GetLoan)
	g.GET("/loans/:loan_id/standing", r.Loans.Standing)
	g.POST("/loans/:loan_id/repayments", r.Repayments.SubmitRepayment)
	g.GET("/loans/:loan_id/repayments", r.Repayments.ListRepayments)
	g.GET("/loans/:loan_id/repayments/:repayment_id", r.Repayments.GetRepayment)

	g.GET("/overview", r.Overview.Summary)

	g.POST("/admin/overdue-sweep", r.Loans.SweepOverdue)
}
