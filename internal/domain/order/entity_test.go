//go:build unit

package order_test

import (
	"testing"
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)

func mustLine(t *testing.T, name string, qty int, amount string) sale.Line {
	t.Helper()
	l, err := sale.NewLine(name, qty, sale.MustMoney(amount), "")
	require.NoError(t, err)
	return l
}

func newOrder(t *testing.T) *order.PendingOrder {
	t.Helper()
	o, err := order.NewPendingOrder(uuid.Nil, "Amna", []sale.Line{
		mustLine(t, "Mint Margarita", 2, "260"),
		mustLine(t, "Fries", 1, "150"),
	}, submittedAt)
	require.NoError(t, err)
	return o
}

func TestNewPendingOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		o := newOrder(t)
		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, "410", o.TotalAmount().String())
		assert.Len(t, o.Lines(), 2)
		assert.Empty(t, o.DecidedBy())
		assert.Nil(t, o.DecidedAt())
	})

	t.Run("empty customer name", func(t *testing.T) {
		_, err := order.NewPendingOrder(uuid.Nil, "  ", []sale.Line{mustLine(t, "Fries", 1, "150")}, submittedAt)
		assert.ErrorIs(t, err, order.ErrCustomerNameRequired)
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := order.NewPendingOrder(uuid.Nil, "Amna", nil, submittedAt)
		assert.ErrorIs(t, err, order.ErrNoLines)
	})

	t.Run("lines are copied", func(t *testing.T) {
		lines := []sale.Line{mustLine(t, "Fries", 1, "150")}
		o, err := order.NewPendingOrder(uuid.Nil, "Amna", lines, submittedAt)
		require.NoError(t, err)

		lines[0] = mustLine(t, "Tea", 9, "90")
		assert.Equal(t, "Fries", o.Lines()[0].ItemName())
	})
}

func TestTransitions(t *testing.T) {
	decidedAt := submittedAt.Add(10 * time.Minute)

	t.Run("approve then materialize", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Approve("staff1", decidedAt))
		assert.Equal(t, order.StatusApproved, o.Status())
		assert.Equal(t, "staff1", o.DecidedBy())

		ids := []uuid.UUID{uuid.New(), uuid.New()}
		next := 0
		records, err := o.SaleRecords(func() uuid.UUID { id := ids[next]; next++; return id }, decidedAt)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, ids[0], records[0].ID())
		assert.Equal(t, "Mint Margarita", records[0].ItemName())
		assert.Equal(t, 2, records[0].Quantity())
		assert.Equal(t, "260", records[0].Amount().String())
		assert.Equal(t, "Amna", records[0].CustomerName())
		assert.Equal(t, o.ID(), *records[0].OrderID())
		assert.Equal(t, decidedAt, records[1].Timestamp())
	})

	t.Run("reject", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Reject("staff1", decidedAt))
		assert.Equal(t, order.StatusRejected, o.Status())

		_, err := o.SaleRecords(uuid.New, decidedAt)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("terminal states do not move", func(t *testing.T) {
		approved := newOrder(t)
		require.NoError(t, approved.Approve("staff1", decidedAt))
		assert.ErrorIs(t, approved.Reject("staff2", decidedAt), order.ErrInvalidTransition)
		assert.ErrorIs(t, approved.Approve("staff2", decidedAt), order.ErrInvalidTransition)

		rejected := newOrder(t)
		require.NoError(t, rejected.Reject("staff1", decidedAt))
		assert.ErrorIs(t, rejected.Approve("staff2", decidedAt), order.ErrInvalidTransition)
	})

	t.Run("decider required", func(t *testing.T) {
		o := newOrder(t)
		assert.ErrorIs(t, o.Approve("", decidedAt), order.ErrDeciderRequired)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("pending cannot materialize", func(t *testing.T) {
		_, err := newOrder(t).SaleRecords(uuid.New, decidedAt)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestDecision(t *testing.T) {
	o := newOrder(t)
	_, err := o.Decision()
	assert.ErrorIs(t, err, order.ErrInvalidTransition)

	decidedAt := submittedAt.Add(time.Hour)
	require.NoError(t, o.Approve("staff1", decidedAt))

	d, err := o.Decision()
	require.NoError(t, err)
	assert.Equal(t, order.Decision{
		OrderID:      o.ID(),
		CustomerName: "Amna",
		Status:       order.StatusApproved,
		DecidedBy:    "staff1",
		DecidedAt:    decidedAt,
		TotalAmount:  o.TotalAmount(),
		LineCount:    2,
		SubmittedAt:  submittedAt,
	}, d)

	requeued := o.Requeue()
	assert.Equal(t, order.StatusPending, requeued.Status())
	assert.Equal(t, o.ID(), requeued.ID())
	assert.Nil(t, requeued.DecidedAt())
}

func TestStatus(t *testing.T) {
	assert.True(t, order.StatusPending.CanTransitionTo(order.StatusApproved))
	assert.True(t, order.StatusPending.CanTransitionTo(order.StatusRejected))
	assert.False(t, order.StatusPending.CanTransitionTo(order.StatusPending))
	assert.False(t, order.StatusApproved.CanTransitionTo(order.StatusRejected))
	assert.False(t, order.StatusRejected.CanTransitionTo(order.StatusPending))
	assert.False(t, order.Status("shipped").IsValid())
}
