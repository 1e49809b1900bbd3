package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "microfinance-backoffice/internal/adapter/http"
	"microfinance-backoffice/internal/adapter/middleware"
	"microfinance-backoffice/internal/adapter/repository/mysql"
	"microfinance-backoffice/internal/config"
	"microfinance-backoffice/internal/domain/standing"
	"microfinance-backoffice/internal/infrastructure/cache"
	"microfinance-backoffice/internal/infrastructure/db"
	"microfinance-backoffice/internal/infrastructure/observability"
	"microfinance-backoffice/internal/jobs"
	"microfinance-backoffice/internal/usecase/borrower"
	"microfinance-backoffice/internal/usecase/loan"
	"microfinance-backoffice/internal/usecase/overview"
	"microfinance-backoffice/internal/usecase/repayment"
	"microfinance-backoffice/migrations"
)

func main() {
	cfg := config.Load()
	logger := observability.InitLogger(observability.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		if err := db.RunMigrations(migrations.FS, cfg.MigrationURL()); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.WithLogLevel(cfg.DBLogLevel))
	if err != nil {
		logger.Error("mysql connect failed", "err", err)
		os.Exit(1)
	}
	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Error("redis connect failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// repositories
	borrowerRepo := mysql.NewBorrowerRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	overviewRepo := mysql.NewOverviewRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	metrics := observability.NewMetrics()
	engine := standing.NewEngine(
		standing.WithStandingFallback(cfg.StandingFallback),
		standing.WithLogger(logger),
	)

	// usecases
	borrowerUC := borrower.NewUsecase(borrowerRepo, loanRepo, repaymentRepo, engine)
	loanUC := loan.NewUsecase(loanRepo, borrowerRepo, tx).WithRecorder(metrics).WithLogger(logger)
	repaymentUC := repayment.NewUsecase(tx, loanRepo, repaymentRepo).WithRecorder(metrics)
	overviewUC := overview.NewUsecase(overviewRepo)

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Error("mysql handle failed", "err", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	// detailed error bodies outside production
	e.Debug = !cfg.IsProduction()
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestLogger(logger))

	httpadp.Register(e, httpadp.Routes{
		Health: httpadp.NewHandler(
			httpadp.Check{Name: "mysql", Ping: sqlDB.PingContext},
			httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
		Borrowers:  httpadp.NewBorrowerHandler(borrowerUC),
		Loans:      httpadp.NewLoanHandler(loanUC, borrowerUC),
		Repayments: httpadp.NewRepaymentHandler(repaymentUC),
		Overview:   httpadp.NewOverviewHandler(overviewUC),
		Metrics:    metrics.Handler(),
		Middleware: []echo.MiddlewareFunc{
			middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
		},
	})

	go jobs.NewOverdueSweeper(loanUC, cfg.OverdueSweepInterval, logger).Run(ctx)

	addr := ":" + cfg.AppPort
	go func() {
		logger.Info("listening", "addr", addr, "env", cfg.AppEnv)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	_ = sqlDB.Close()
	logger.Info("server stopped")
}
