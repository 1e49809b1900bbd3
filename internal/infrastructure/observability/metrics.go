package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "backoffice"

// Metrics is safe to use through a nil pointer; every recorder is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	settlements        prometheus.Counter
	settledAmount      prometheus.Counter
	overdueTransitions prometheus.Counter
	overdueSkipped     prometheus.Counter
	sweeps             *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		settlements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repayments_settled_total",
			Help:      "Repayments applied to a loan balance.",
		}),
		settledAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repayment_amount_settled_total",
			Help:      "Sum of repayment plus discount amounts applied.",
		}),
		overdueTransitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loans_marked_overdue_total",
			Help:      "Loans moved from Active to Overdue by the sweep.",
		}),
		overdueSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overdue_sweep_skipped_loans_total",
			Help:      "Active loans the sweep could not evaluate.",
		}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overdue_sweeps_total",
			Help:      "Overdue sweep runs by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.settlements, m.settledAmount, m.overdueTransitions, m.overdueSkipped, m.sweeps,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) SettlementRecorded(amount, discount decimal.Decimal) {
	if m == nil {
		return
	}
	m.settlements.Inc()
	f, _ := amount.Add(discount).Float64()
	m.settledAmount.Add(f)
}

func (m *Metrics) OverdueSweepFinished(transitioned int64, skipped int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.sweeps.WithLabelValues("error").Inc()
		return
	}
	m.sweeps.WithLabelValues("ok").Inc()
	m.overdueTransitions.Add(float64(transitioned))
	m.overdueSkipped.Add(float64(skipped))
}
