//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/queries"
	"stand-ledger/internal/usecase/shared"
	"stand-ledger/tests/common/builder"
	sharedmock "stand-ledger/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	discard = slog.New(slog.NewTextHandler(io.Discard, nil))
	staffer = staff.Member("staff1")
)

func corrupt(msg string) error {
	return infra.WrapRepoErr(discard, infra.KindCorrupt, msg, errors.New("invalid JSON in items column"))
}

func readsUoW(t *testing.T) (*sharedmock.MockUnitOfWork, *sharedmock.MockReads) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	reads := sharedmock.NewMockReads(ctrl)
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Reads) error) error {
			return fn(ctx, reads)
		}).AnyTimes()
	return uow, reads
}

func records(t *testing.T, lines ...*builder.SaleBuilder) []sale.Record {
	out := make([]sale.Record, 0, len(lines))
	for _, l := range lines {
		r, err := l.BuildRecord()
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func line(name string, qty int, amount string) *builder.SaleBuilder {
	return builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
		b.ItemName, b.Quantity, b.Amount = name, qty, amount
	})
}

func TestCatalogQueries_ListItems(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().Items(gomock.Any()).Return([]sale.Item{
			{ID: 1, Name: "Mint Margarita", Price: sale.MustMoney("200")},
			{ID: 2, Name: "Fries", Price: sale.MustMoney("150"), Description: "salted"},
		}, nil)

		items, err := queries.NewCatalogQueries(uow, discard).ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Fries", items[1].Name)
		assert.Equal(t, "salted", items[1].Description)
	})

	t.Run("unreadable catalog is served empty", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().Items(gomock.Any()).Return(nil, corrupt("items"))

		items, err := queries.NewCatalogQueries(uow, discard).ListItems(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("cancellation is returned", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().Items(gomock.Any()).Return(nil, context.Canceled)

		_, err := queries.NewCatalogQueries(uow, discard).ListItems(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSaleQueries_ListSales(t *testing.T) {
	ctx := context.Background()

	t.Run("ledger order is kept", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().Sales(gomock.Any()).Return(records(t, line("B", 1, "10"), line("A", 2, "20")), nil)

		views, err := queries.NewSaleQueries(uow, discard).ListSales(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "B", views[0].ItemName)
		assert.Equal(t, "A", views[1].ItemName)
	})

	t.Run("unreadable ledger is served empty", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().Sales(gomock.Any()).Return(nil, corrupt("sales"))

		views, err := queries.NewSaleQueries(uow, discard).ListSales(ctx)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestSaleQueries_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("figures are recomputed from the ledger", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().InitialInvestment(gomock.Any()).Return(sale.MustMoney("21000"), nil)
		reads.EXPECT().Sales(gomock.Any()).Return(records(t,
			line("Mint Margarita", 2, "400"),
			line("Fries", 1, "150"),
			line("Mint Margarita", 1, "200"),
		), nil)

		s, err := queries.NewSaleQueries(uow, discard).GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, "750", s.TotalSales.String())
		assert.Equal(t, "20250", s.RemainingInvestment.String())
		assert.Equal(t, "3.57", s.PercentRecouped.StringFixed(2))
		require.Len(t, s.SalesByItem, 2)
		assert.Equal(t, "Mint Margarita", s.SalesByItem[0].Name)
		assert.Equal(t, 3, s.SalesByItem[0].Quantity)
		assert.Equal(t, "600", s.SalesByItem[0].Amount.String())
	})

	t.Run("unreadable ledger counts as empty", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().InitialInvestment(gomock.Any()).Return(sale.MustMoney("21000"), nil)
		reads.EXPECT().Sales(gomock.Any()).Return(nil, corrupt("sales"))

		s, err := queries.NewSaleQueries(uow, discard).GetSummary(ctx)
		require.NoError(t, err)
		assert.True(t, s.TotalSales.IsZero())
		assert.Equal(t, "21000", s.RemainingInvestment.String())
		assert.Empty(t, s.SalesByItem)
	})

	t.Run("missing investment fails the call", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().InitialInvestment(gomock.Any()).
			Return(sale.Zero, infra.WrapRepoErr(discard, infra.KindNotFound, "investment", errors.New("no rows")))

		_, err := queries.NewSaleQueries(uow, discard).GetSummary(ctx)
		assert.True(t, errs.Is(err, shared.ErrInvestmentUnavailable))
	})
}

func TestOrderQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("pending orders in submission order", func(t *testing.T) {
		uow, reads := readsUoW(t)
		first, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.CustomerName = "First" }).BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.CustomerName = "Second"
			b.SubmittedAt = b.SubmittedAt.Add(time.Minute)
		}).BuildDomain()
		require.NoError(t, err)
		reads.EXPECT().PendingOrders(gomock.Any()).Return([]*order.PendingOrder{first, second}, nil)

		views, err := queries.NewOrderQueries(uow, discard).ListPending(ctx, staffer)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "First", views[0].CustomerName)
		assert.Equal(t, order.StatusPending, views[0].Status)
		assert.Equal(t, "260", views[0].TotalAmount.String())
		require.Len(t, views[0].Lines, 1)
		assert.Equal(t, "Mint Margarita", views[0].Lines[0].ItemName)
	})

	t.Run("pending orders require staff", func(t *testing.T) {
		uow, _ := readsUoW(t)
		_, err := queries.NewOrderQueries(uow, discard).ListPending(ctx, staff.Guest())
		assert.ErrorIs(t, err, shared.ErrStaffRequired)
	})

	t.Run("unreadable queue is served empty", func(t *testing.T) {
		uow, reads := readsUoW(t)
		reads.EXPECT().PendingOrders(gomock.Any()).Return(nil, corrupt("pending_orders"))

		views, err := queries.NewOrderQueries(uow, discard).ListPending(ctx, staffer)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("decision limit is clamped", func(t *testing.T) {
		uow, reads := readsUoW(t)
		d, err := builder.NewOrderBuilder().BuildDecision(order.StatusRejected, "staff1", time.Now())
		require.NoError(t, err)
		reads.EXPECT().Decisions(gomock.Any(), queries.MaxListLimit).Return([]order.Decision{d}, nil)

		views, err := queries.NewOrderQueries(uow, discard).ListDecisions(ctx, staffer, 10_000)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, order.StatusRejected, views[0].Status)
		assert.Equal(t, "staff1", views[0].DecidedBy)
	})

	t.Run("decisions require staff", func(t *testing.T) {
		uow, _ := readsUoW(t)
		_, err := queries.NewOrderQueries(uow, discard).ListDecisions(ctx, staff.Guest(), 0)
		assert.ErrorIs(t, err, shared.ErrStaffRequired)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
