package jobs

import (
	"context"
	"log/slog"
	"time"

	"microfinance-backoffice/internal/usecase/loan"
)

// Sweeper is the part of the loan usecase the job drives.
type Sweeper interface {
	SweepOverdue(ctx context.Context) (loan.SweepResult, error)
}

// OverdueSweeper runs the overdue sweep on a fixed interval until its context
// is canceled.
type OverdueSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	log      *slog.Logger
}

func NewOverdueSweeper(s Sweeper, interval time.Duration, logger *slog.Logger) *OverdueSweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &OverdueSweeper{sweeper: s, interval: interval, log: logger}
}

// Run blocks. The first sweep happens immediately so a restart does not wait
// a full interval. A non-positive interval returns at once.
func (j *OverdueSweeper) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.log.Info("overdue sweeper disabled")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.log.Info("overdue sweeper started", "interval", j.interval.String())
	for {
		j.runOnce(ctx)
		select {
		case <-ctx.Done():
			j.log.Info("overdue sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

func (j *OverdueSweeper) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	res, err := j.sweeper.SweepOverdue(ctx)
	if err != nil {
		j.log.ErrorContext(ctx, "overdue sweep failed", "err", err)
		return
	}
	j.log.DebugContext(ctx, "overdue sweep tick",
		"checked", res.Checked, "transitioned", res.Transitioned, "skipped", res.Skipped)
}
