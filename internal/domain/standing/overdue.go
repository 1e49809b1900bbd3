package standing

import (
	"fmt"
	"strings"
	"time"
)

const SkipMissingDueDate = "missing due_date"

type SkippedLoan struct {
	ID     string
	Reason string
}

// OverdueReport lists the Active loans that should move to Overdue, plus the
// ones that could not be evaluated.
type OverdueReport struct {
	Overdue []string
	Skipped []SkippedLoan
}

// DetectOverdue reports every Active loan whose due date is strictly before
// now. Other statuses are never touched.
func DetectOverdue(loans []LoanRecord, now time.Time) OverdueReport {
	var rep OverdueReport
	now = now.UTC()
	for _, l := range loans {
		if l.Status != StatusActive {
			continue
		}

		if l.DueDate == nil || l.DueDate.IsZero() {
			rep.Skipped = append(rep.Skipped, SkippedLoan{ID: l.ID, Reason: SkipMissingDueDate})
			continue
		}
		if l.DueDate.Before(now) {
			rep.Overdue = append(rep.Overdue, l.ID)
		}
	}
	return rep
}

// Layouts without a zone are parsed as UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseDueDate parses a due date as stored by the back office and returns it
// in UTC.
func ParseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty due date", ErrInvalidInput)
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised due date %q", ErrInvalidInput, raw)
}
