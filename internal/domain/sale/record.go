package sale

import (
	"time"

	"github.com/google/uuid"
)

// Record is one immutable ledger entry.
type Record struct {
	id           uuid.UUID
	line         Line
	timestamp    time.Time
	customerName string
	orderID      *uuid.UUID
}

// NewDirectRecord is a sale entered at the counter, with no customer attached.
func NewDirectRecord(id uuid.UUID, line Line, now time.Time) Record {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Record{
		id:        id,
		line:      line,
		timestamp: now.UTC(),
	}
}

// NewOrderRecord materializes one line of an approved customer order.
func NewOrderRecord(id uuid.UUID, line Line, now time.Time, customerName string, orderID uuid.UUID) Record {
	r := NewDirectRecord(id, line, now)
	r.customerName = customerName
	r.orderID = &orderID
	return r
}

func ReconstructRecord(id uuid.UUID, line Line, timestamp time.Time, customerName string, orderID *uuid.UUID) Record {
	return Record{
		id:           id,
		line:         line,
		timestamp:    timestamp.UTC(),
		customerName: customerName,
		orderID:      orderID,
	}
}

func (r Record) ID() uuid.UUID        { return r.id }
func (r Record) Line() Line           { return r.line }
func (r Record) ItemName() string     { return r.line.itemName }
func (r Record) Quantity() int        { return r.line.quantity }
func (r Record) Amount() Money        { return r.line.amount }
func (r Record) Options() string      { return r.line.options }
func (r Record) Timestamp() time.Time { return r.timestamp }
func (r Record) CustomerName() string { return r.customerName }
func (r Record) OrderID() *uuid.UUID  { return r.orderID }
