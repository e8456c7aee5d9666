// Package metrics exports ledger activity to Prometheus.
package metrics

import (
	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stand"

// Recorder implements commands.Recorder.
type Recorder struct {
	ordersSubmitted   prometheus.Counter
	orderDecisions    *prometheus.CounterVec
	salesRecords      *prometheus.CounterVec
	salesAmount       *prometheus.CounterVec
	orderValue        prometheus.Histogram
	reconciliations   *prometheus.CounterVec
	ledgerClears      prometheus.Counter
	ledgerClearedRows prometheus.Counter
}

var _ commands.Recorder = (*Recorder)(nil)

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		ordersSubmitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_submitted_total",
			Help:      "Customer orders placed in the pending queue.",
		}),
		orderDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_decisions_total",
			Help:      "Staff decisions on pending orders.",
		}, []string{"status"}),
		salesRecords: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_records_total",
			Help:      "Sale records appended to the ledger.",
		}, []string{"source"}),
		salesAmount: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_amount_total",
			Help:      "Money appended to the ledger.",
		}, []string{"source"}),
		orderValue: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value",
			Help:      "Total amount of submitted customer orders.",
			Buckets:   []float64{100, 250, 500, 1000, 2500, 5000},
		}),
		reconciliations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "approval_reconciliations_total",
			Help:      "Outcomes of reconciling a failed approval.",
		}, []string{"outcome"}),
		ledgerClears: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_clears_total",
			Help:      "Times the sales history was cleared.",
		}),
		ledgerClearedRows: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_cleared_records_total",
			Help:      "Sale records removed by clears.",
		}),
	}
}

func (r *Recorder) OrderSubmitted(total sale.Money) {
	r.ordersSubmitted.Inc()
	r.orderValue.Observe(total.Decimal().InexactFloat64())
}

func (r *Recorder) OrderDecided(status order.Status) {
	r.orderDecisions.WithLabelValues(status.String()).Inc()
}

func (r *Recorder) SalesRecorded(source string, n int, amount sale.Money) {
	r.salesRecords.WithLabelValues(source).Add(float64(n))
	r.salesAmount.WithLabelValues(source).Add(amount.Decimal().InexactFloat64())
}

func (r *Recorder) ApprovalReconciled(outcome string) {
	r.reconciliations.WithLabelValues(outcome).Inc()
}

func (r *Recorder) LedgerCleared(n int64) {
	r.ledgerClears.Inc()
	r.ledgerClearedRows.Add(float64(n))
}
