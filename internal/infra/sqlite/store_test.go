//go:build unit

package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/pkg/config"
	"stand-ledger/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "stand.db"),
		BusyTimeout: 5 * time.Second,
	}
	s, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newPendingOrder(t *testing.T, customer string, submitted time.Time) *order.PendingOrder {
	t.Helper()
	l, err := sale.NewLine("Mint Margarita", 2, sale.MustMoney("260"), "")
	require.NoError(t, err)
	o, err := order.NewPendingOrder(uuid.New(), customer, []sale.Line{l}, submitted)
	require.NoError(t, err)
	return o
}

func directRecord(t *testing.T, name string, qty int, amount string, at time.Time) sale.Record {
	t.Helper()
	l, err := sale.NewLine(name, qty, sale.MustMoney(amount), "")
	require.NoError(t, err)
	return sale.NewDirectRecord(uuid.New(), l, at)
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stand.db")
	cfg := config.SQLiteConfig{Path: path, BusyTimeout: time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestPendingOrders_InsertTake(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	o := newPendingOrder(t, "Amna", baseTime)

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PendingOrders().Insert(ctx, o)
	}))

	var taken *order.PendingOrder
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		taken, err = tx.PendingOrders().Take(ctx, o.ID())
		return err
	}))
	assert.Equal(t, o.ID(), taken.ID())
	assert.Equal(t, "Amna", taken.CustomerName())
	assert.True(t, baseTime.Equal(taken.SubmittedAt()))
	assert.True(t, taken.TotalAmount().Equal(o.TotalAmount()))

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.PendingOrders().Take(ctx, o.ID())
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestPendingOrders_DuplicateInsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	o := newPendingOrder(t, "Amna", baseTime)

	insert := func(ctx context.Context, tx shared.Tx) error { return tx.PendingOrders().Insert(ctx, o) }
	require.NoError(t, s.Within(ctx, insert))

	err := s.Within(ctx, insert)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestPendingOrders_ListKeepsSubmissionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	first := newPendingOrder(t, "Amna", baseTime)
	second := newPendingOrder(t, "Bilal", baseTime.Add(time.Minute))

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PendingOrders().Insert(ctx, first); err != nil {
			return err
		}
		return tx.PendingOrders().Insert(ctx, second)
	}))

	// take and re-queue the first order: it keeps its place
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.PendingOrders().Take(ctx, first.ID())
		if err != nil {
			return err
		}
		return tx.PendingOrders().Insert(ctx, o)
	}))

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		orders, err := reads.PendingOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, first.ID(), orders[0].ID())
		assert.Equal(t, second.ID(), orders[1].ID())
		return nil
	}))
}

func TestWithin_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	o := newPendingOrder(t, "Amna", baseTime)
	boom := errors.New("boom")

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PendingOrders().Insert(ctx, o); err != nil {
			return err
		}
		if err := tx.Sales().Append(ctx, []sale.Record{directRecord(t, "Fries", 1, "150", baseTime)}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		orders, err := reads.PendingOrders(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
		records, err := reads.Sales(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
		return nil
	}))
}

func TestSales_AppendListClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	orderID := uuid.New()
	line, err := sale.NewLine("Mint Margarita", 2, sale.MustMoney("260"), "extra mint")
	require.NoError(t, err)

	batch := []sale.Record{
		directRecord(t, "Fries", 1, "150", baseTime),
		sale.NewOrderRecord(uuid.New(), line, baseTime.Add(time.Second), "Amna", orderID),
		directRecord(t, "Water", 3, "90", baseTime.Add(2*time.Second)),
	}
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sales().Append(ctx, batch)
	}))

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		records, err := reads.Sales(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i := range batch {
			assert.Equal(t, batch[i].ID(), records[i].ID())
		}
		assert.Equal(t, "Amna", records[1].CustomerName())
		assert.Equal(t, &orderID, records[1].OrderID())
		assert.Equal(t, "extra mint", records[1].Options())
		assert.Empty(t, records[0].CustomerName())
		assert.Nil(t, records[0].OrderID())
		return nil
	}))

	var removed int64
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		removed, err = tx.Sales().Clear(ctx)
		return err
	}))
	assert.Equal(t, int64(3), removed)
}

func TestSales_AppendIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	dup := directRecord(t, "Fries", 1, "150", baseTime)

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sales().Append(ctx, []sale.Record{dup, directRecord(t, "Tea", 1, "50", baseTime), dup})
	})
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		records, err := reads.Sales(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
		return nil
	}))
}

func TestCatalogAndSettings_Provisioning(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	items := []sale.Item{
		{ID: 1, Name: "Mint Margarita", Price: sale.MustMoney("130"), Description: "Fresh mint"},
		{ID: 2, Name: "Fries", Price: sale.MustMoney("150"), Description: "Salted"},
	}

	err := s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		_, err := reads.InitialInvestment(ctx)
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	provision := func(amount string) (int, bool) {
		var added int
		var set bool
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			if added, err = tx.Catalog().SeedIfMissing(ctx, items); err != nil {
				return err
			}
			set, err = tx.Settings().InitInvestmentIfAbsent(ctx, sale.MustMoney(amount))
			return err
		}))
		return added, set
	}

	added, set := provision("21000")
	assert.Equal(t, 2, added)
	assert.True(t, set)

	added, set = provision("50000")
	assert.Equal(t, 0, added)
	assert.False(t, set)

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		got, err := reads.Items(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Mint Margarita", got[0].Name)
		assert.Equal(t, "130", got[0].Price.String())

		inv, err := reads.InitialInvestment(ctx)
		require.NoError(t, err)
		assert.Equal(t, "21000", inv.String())
		return nil
	}))
}

func TestDecisions_RecordAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var ids []uuid.UUID
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for i, status := range []order.Status{order.StatusApproved, order.StatusRejected, order.StatusApproved} {
			o := newPendingOrder(t, "Amna", baseTime)
			var err error
			if status == order.StatusApproved {
				err = o.Approve("staff1", baseTime.Add(time.Duration(i+1)*time.Minute))
			} else {
				err = o.Reject("staff1", baseTime.Add(time.Duration(i+1)*time.Minute))
			}
			require.NoError(t, err)
			d, err := o.Decision()
			require.NoError(t, err)
			if err := tx.Decisions().Record(ctx, d); err != nil {
				return err
			}
			ids = append(ids, o.ID())
		}
		return nil
	}))

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		decisions, err := reads.Decisions(ctx, 2)
		require.NoError(t, err)
		require.Len(t, decisions, 2)
		assert.Equal(t, ids[2], decisions[0].OrderID)
		assert.Equal(t, ids[1], decisions[1].OrderID)
		assert.Equal(t, order.StatusRejected, decisions[1].Status)

		d, err := reads.DecisionFor(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "staff1", d.DecidedBy)
		assert.Equal(t, 1, d.LineCount)

		_, err = reads.DecisionFor(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		return nil
	}))
}

func TestReads_CorruptRowsAreReported(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.db.Exec(`INSERT INTO sales (id, item_name, quantity, amount, options, created_at)
		VALUES (?, 'Fries', 1, 'not-a-number', '', ?)`, uuid.NewString(), formatTime(baseTime))
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO pending_orders (id, customer_name, items, total_amount, submitted_at)
		VALUES (?, 'Amna', '{broken', '10', ?)`, uuid.NewString(), formatTime(baseTime))
	require.NoError(t, err)

	_ = s.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		_, err := reads.Sales(ctx)
		assert.True(t, infra.IsKind(err, infra.KindCorrupt))
		_, err = reads.PendingOrders(ctx)
		assert.True(t, infra.IsKind(err, infra.KindCorrupt))
		return nil
	})

	// the rows are still there for manual repair
	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM sales`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestWithin_SerializesConcurrentTakes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	o := newPendingOrder(t, "Amna", baseTime)
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PendingOrders().Insert(ctx, o)
	}))

	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, notFound := 0, 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				_, err := tx.PendingOrders().Take(ctx, o.ID())
				return err
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case infra.IsKind(err, infra.KindNotFound):
				notFound++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, notFound)
}

func TestTimeLayoutSortsLexically(t *testing.T) {
	a := formatTime(baseTime.Add(500 * time.Millisecond))
	b := formatTime(baseTime.Add(time.Second))
	assert.Less(t, a, b)

	parsed, err := parseTime(a)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(baseTime.Add(500*time.Millisecond)))
}
