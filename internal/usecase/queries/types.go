package queries

import (
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 50
)

type ItemView struct {
	ID          int64
	Name        string
	Price       sale.Money
	Description string
}

type SaleView struct {
	ID           uuid.UUID
	ItemName     string
	Quantity     int
	Amount       sale.Money
	Options      string
	Timestamp    time.Time
	CustomerName string
	OrderID      *uuid.UUID
}

type LineView struct {
	ItemName string
	Quantity int
	Amount   sale.Money
	Options  string
}

type PendingOrderView struct {
	ID           uuid.UUID
	CustomerName string
	Lines        []LineView
	Status       order.Status
	TotalAmount  sale.Money
	SubmittedAt  time.Time
}

type DecisionView struct {
	OrderID      uuid.UUID
	CustomerName string
	Status       order.Status
	DecidedBy    string
	DecidedAt    time.Time
	TotalAmount  sale.Money
	LineCount    int
	SubmittedAt  time.Time
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func toSaleView(r sale.Record) SaleView {
	return SaleView{
		ID:           r.ID(),
		ItemName:     r.ItemName(),
		Quantity:     r.Quantity(),
		Amount:       r.Amount(),
		Options:      r.Options(),
		Timestamp:    r.Timestamp(),
		CustomerName: r.CustomerName(),
		OrderID:      r.OrderID(),
	}
}

func toPendingOrderView(o *order.PendingOrder) PendingOrderView {
	lines := make([]LineView, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, LineView{
			ItemName: l.ItemName(),
			Quantity: l.Quantity(),
			Amount:   l.Amount(),
			Options:  l.Options(),
		})
	}
	return PendingOrderView{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Lines:        lines,
		Status:       o.Status(),
		TotalAmount:  o.TotalAmount(),
		SubmittedAt:  o.SubmittedAt(),
	}
}

func toDecisionView(d order.Decision) DecisionView {
	return DecisionView(d)
}
