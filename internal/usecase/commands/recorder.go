package commands

//go:generate mockgen -source=recorder.go -destination=../../../tests/mock/commands/recorder.go -package=commands

import (
	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
)

// Recorder receives ledger events for metrics.
type Recorder interface {
	OrderSubmitted(total sale.Money)
	OrderDecided(status order.Status)
	SalesRecorded(source string, records int, amount sale.Money)
	ApprovalReconciled(outcome string)
	LedgerCleared(removed int64)
}

const (
	SourceDirect = "direct"
	SourceOrder  = "order"
)

const (
	ReconcileRequeued  = "requeued"
	ReconcileCommitted = "committed"
	ReconcileDecided   = "decided_elsewhere"
	ReconcileFailed    = "failed"
)

type NopRecorder struct{}

func (NopRecorder) OrderSubmitted(sale.Money)             {}
func (NopRecorder) OrderDecided(order.Status)             {}
func (NopRecorder) SalesRecorded(string, int, sale.Money) {}
func (NopRecorder) ApprovalReconciled(string)             {}
func (NopRecorder) LedgerCleared(int64)                   {}
