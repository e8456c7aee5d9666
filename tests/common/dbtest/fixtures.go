//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// DefaultInvestment is what SeedReferenceData stores as the initial investment.
const DefaultInvestment = "21000"

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// SetInvestment overwrites the stored initial investment.
func SetInvestment(t *testing.T, db DBLike, amount string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO settings (key, value) VALUES ('initial_investment', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, amount)
	require.NoError(t, err)
}

// InsertRawPendingOrder stores a queue row as-is, for rows the application could never write.
func InsertRawPendingOrder(t *testing.T, db DBLike, customer, itemsJSON, total string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO pending_orders (id, customer_name, items, total_amount, submitted_at)
		VALUES ($1, $2, $3::jsonb, $4::numeric, now())`, id, customer, itemsJSON, total)
	require.NoError(t, err)
	return id
}

// DecisionStatuses returns the archived decision statuses keyed by order id.
func DecisionStatuses(t *testing.T, db DBLike) map[uuid.UUID]string {
	t.Helper()

	rows, err := db.Query(context.Background(), `SELECT order_id, status FROM order_decisions`)
	require.NoError(t, err)
	defer rows.Close()

	out := make(map[uuid.UUID]string)
	for rows.Next() {
		var (
			id     uuid.UUID
			status string
		)
		require.NoError(t, rows.Scan(&id, &status))
		out[id] = status
	}
	require.NoError(t, rows.Err())
	return out
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO items (id, name, price, description) VALUES
		    (1, 'Mint Margarita', 130, 'Refreshing mint drink with lemon and soda'),
		    (2, 'Classic Butter Corn', 100, 'Sweet corn with butter and spices')
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ('initial_investment', $1)
		ON CONFLICT (key) DO NOTHING;
	`, DefaultInvestment)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
