// Package sqlite is the embedded single-file backend. All writers in the process are
// serialized by one mutex; readers use their own transactions under WAL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"stand-ledger/internal/pkg/config"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/shared"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// Migrations returns the schema statements. Each string is a single SQL statement.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS items (
			id          INTEGER PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			price       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			seq           INTEGER PRIMARY KEY AUTOINCREMENT,
			id            TEXT NOT NULL UNIQUE,
			item_name     TEXT NOT NULL,
			quantity      INTEGER NOT NULL CHECK (quantity >= 1),
			amount        TEXT NOT NULL,
			options       TEXT NOT NULL DEFAULT '',
			customer_name TEXT,
			order_id      TEXT,
			created_at    TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_order ON sales(order_id)`,
		`CREATE TABLE IF NOT EXISTS pending_orders (
			seq           INTEGER PRIMARY KEY AUTOINCREMENT,
			id            TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL CHECK (customer_name <> ''),
			items         TEXT NOT NULL,
			total_amount  TEXT NOT NULL,
			submitted_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_decisions (
			order_id      TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			status        TEXT NOT NULL CHECK (status IN ('approved', 'rejected')),
			decided_by    TEXT NOT NULL,
			decided_at    TEXT NOT NULL,
			total_amount  TEXT NOT NULL,
			line_count    INTEGER NOT NULL,
			submitted_at  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decisions_decided_at ON order_decisions(decided_at)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
}

type Store struct {
	db     *sql.DB
	logger *slog.Logger
	// writeMu serializes every write unit of work in this process.
	writeMu sync.Mutex
}

// Open creates the database file if needed and applies the schema.
func Open(cfg config.SQLiteConfig, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	for i, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration statement %d: %w", i+1, err)
		}
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err := fn(ctx, &sqliteTx{q: sqlTx, logger: s.logger}); err != nil {
		if rollbackErr := sqlTx.Rollback(); rollbackErr != nil {
			s.logger.Warn("rollback failed", "error", rollbackErr.Error())
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly never takes the writer lock. The transaction is rolled back after fn.
func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	sqlTx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rollbackErr := sqlTx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			s.logger.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
		}
	}()

	return fn(ctx, &reads{q: sqlTx, logger: s.logger})
}

// queryer is satisfied by *sql.Tx and *sql.DB.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqliteTx struct {
	q      queryer
	logger *slog.Logger
}

func (t *sqliteTx) PendingOrders() shared.PendingOrderRepository {
	return &pendingOrderRepo{q: t.q, logger: t.logger}
}

func (t *sqliteTx) Sales() shared.SaleRepository {
	return &saleRepo{q: t.q, logger: t.logger}
}

func (t *sqliteTx) Decisions() shared.DecisionRepository {
	return &decisionRepo{q: t.q, logger: t.logger}
}

func (t *sqliteTx) Catalog() shared.CatalogRepository {
	return &catalogRepo{q: t.q, logger: t.logger}
}

func (t *sqliteTx) Settings() shared.SettingRepository {
	return &settingRepo{q: t.q, logger: t.logger}
}

func (t *sqliteTx) Reads() shared.Reads {
	return &reads{q: t.q, logger: t.logger}
}
