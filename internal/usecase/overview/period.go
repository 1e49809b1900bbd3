package overview

import (
	"fmt"
	"time"

	domain "microfinance-backoffice/internal/domain/overview"
	"microfinance-backoffice/internal/domain/standing"
)

const DefaultPeriod = "30"

var trailingDays = map[string]int{"7": 7, "30": 30, "90": 90, "180": 180, "365": 365}

// PeriodWindow resolves a reporting period ending at now. Trailing periods
// are counted in whole days; current_month and current_year start at UTC
// midnight on the first day. An empty period means the last 30 days.
func PeriodWindow(period string, now time.Time) (domain.Window, error) {
	now = now.UTC()
	if period == "" {
		period = DefaultPeriod
	}
	if n, ok := trailingDays[period]; ok {
		return domain.Window{From: now.AddDate(0, 0, -n), To: now}, nil
	}
	switch period {
	case "current_month":
		return domain.Window{From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), To: now}, nil
	case "current_year":
		return domain.Window{From: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), To: now}, nil
	}
	return domain.Window{}, fmt.Errorf("%w: unknown period %q", standing.ErrInvalidInput, period)
}
