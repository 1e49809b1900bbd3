package standing

import "log/slog"

// Engine holds the classification tables. It has no mutable state after
// construction and may be shared between goroutines.
type Engine struct {
	standings        []Threshold
	bands            []RiskBand
	standingFallback string
	log              *slog.Logger
}

type Option func(*Engine)

// WithStandingFallback sets the label returned when no standing threshold
// matches. Defaults to StandingBad; StandingUnknown is the other accepted value.
func WithStandingFallback(label string) Option {
	return func(e *Engine) {
		if label != "" {
			e.standingFallback = label
		}
	}
}

func WithStandingTable(t []Threshold) Option {
	return func(e *Engine) { e.standings = append([]Threshold(nil), t...) }
}

func WithRiskTable(t []RiskBand) Option {
	return func(e *Engine) { e.bands = append([]RiskBand(nil), t...) }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		standings:        StandingTable(),
		bands:            RiskTable(),
		standingFallback: StandingBad,
		log:              slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}
