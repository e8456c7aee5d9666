package order

import (
	"errors"
	"strings"
	"time"

	"stand-ledger/internal/domain/sale"

	"github.com/google/uuid"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrNoLines              = errors.New("order must contain at least one item")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrDeciderRequired      = errors.New("decision requires an identity")
)

type PendingOrder struct {
	id           uuid.UUID
	customerName string
	lines        []sale.Line
	status       Status
	submittedAt  time.Time
	totalAmount  sale.Money
	decidedBy    string
	decidedAt    *time.Time
}

func NewPendingOrder(id uuid.UUID, customerName string, lines []sale.Line, now time.Time) (*PendingOrder, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	copied := make([]sale.Line, len(lines))
	copy(copied, lines)

	return &PendingOrder{
		id:           id,
		customerName: name,
		lines:        copied,
		status:       StatusPending,
		submittedAt:  now.UTC(),
		totalAmount:  sale.SumAmounts(copied),
	}, nil
}

// ReconstructPendingOrder rebuilds a queued order from storage. The stored total is kept
// as submitted rather than recomputed.
func ReconstructPendingOrder(id uuid.UUID, customerName string, lines []sale.Line, submittedAt time.Time, totalAmount sale.Money) *PendingOrder {
	return &PendingOrder{
		id:           id,
		customerName: customerName,
		lines:        lines,
		status:       StatusPending,
		submittedAt:  submittedAt.UTC(),
		totalAmount:  totalAmount,
	}
}

func (o *PendingOrder) Approve(by string, at time.Time) error {
	return o.decide(StatusApproved, by, at)
}

func (o *PendingOrder) Reject(by string, at time.Time) error {
	return o.decide(StatusRejected, by, at)
}

func (o *PendingOrder) decide(next Status, by string, at time.Time) error {
	if !o.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(by) == "" {
		return ErrDeciderRequired
	}
	decidedAt := at.UTC()
	o.status = next
	o.decidedBy = by
	o.decidedAt = &decidedAt
	return nil
}

// SaleRecords materializes an approved order into ledger entries, one per line,
// all stamped with the same instant. newID supplies record ids.
func (o *PendingOrder) SaleRecords(newID func() uuid.UUID, at time.Time) ([]sale.Record, error) {
	if o.status != StatusApproved {
		return nil, ErrInvalidTransition
	}
	records := make([]sale.Record, 0, len(o.lines))
	for _, l := range o.lines {
		records = append(records, sale.NewOrderRecord(newID(), l, at, o.customerName, o.id))
	}
	return records, nil
}

// Decision is the archived outcome of a decided order.
type Decision struct {
	OrderID      uuid.UUID
	CustomerName string
	Status       Status
	DecidedBy    string
	DecidedAt    time.Time
	TotalAmount  sale.Money
	LineCount    int
	SubmittedAt  time.Time
}

func (o *PendingOrder) Decision() (Decision, error) {
	if o.status == StatusPending || o.decidedAt == nil {
		return Decision{}, ErrInvalidTransition
	}
	return Decision{
		OrderID:      o.id,
		CustomerName: o.customerName,
		Status:       o.status,
		DecidedBy:    o.decidedBy,
		DecidedAt:    *o.decidedAt,
		TotalAmount:  o.totalAmount,
		LineCount:    len(o.lines),
		SubmittedAt:  o.submittedAt,
	}, nil
}

// Requeue returns a decided order to pending. Only used to compensate a failed approval
// that already took the order off the queue.
func (o *PendingOrder) Requeue() *PendingOrder {
	return ReconstructPendingOrder(o.id, o.customerName, o.lines, o.submittedAt, o.totalAmount)
}

func (o *PendingOrder) ID() uuid.UUID           { return o.id }
func (o *PendingOrder) CustomerName() string    { return o.customerName }
func (o *PendingOrder) Lines() []sale.Line      { return o.lines }
func (o *PendingOrder) Status() Status          { return o.status }
func (o *PendingOrder) SubmittedAt() time.Time  { return o.submittedAt }
func (o *PendingOrder) TotalAmount() sale.Money { return o.totalAmount }
func (o *PendingOrder) DecidedBy() string       { return o.decidedBy }
func (o *PendingOrder) DecidedAt() *time.Time   { return o.decidedAt }
