package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/infra/readstore"
	"stand-ledger/internal/infra/repository"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// ReadCommitted is enough: every write inserts or deletes whole rows and DELETE ... RETURNING
// serializes competing takes of one pending order.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx:   pgxTx,
			logger: u.logger,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if isRetryableError(err) && attempt == maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// Reads never commit; the transaction only pins the snapshot.
func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.Reads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	return fn(ctx, newPgReads(pgxTx, u.logger))
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx   db.DBTX
	logger *slog.Logger

	// Lazy-initialized repositories
	pendingOrderRepo shared.PendingOrderRepository
	saleRepo         shared.SaleRepository
	decisionRepo     shared.DecisionRepository
	catalogRepo      shared.CatalogRepository
	settingRepo      shared.SettingRepository
	reads            shared.Reads
}

func (t *pgTx) PendingOrders() shared.PendingOrderRepository {
	if t.pendingOrderRepo == nil {
		t.pendingOrderRepo = repository.NewPendingOrderRepository(t.dbtx, t.logger)
	}
	return t.pendingOrderRepo
}

func (t *pgTx) Sales() shared.SaleRepository {
	if t.saleRepo == nil {
		t.saleRepo = repository.NewSaleRepository(t.dbtx, t.logger)
	}
	return t.saleRepo
}

func (t *pgTx) Decisions() shared.DecisionRepository {
	if t.decisionRepo == nil {
		t.decisionRepo = repository.NewDecisionRepository(t.dbtx, t.logger)
	}
	return t.decisionRepo
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.dbtx, t.logger)
	}
	return t.catalogRepo
}

func (t *pgTx) Settings() shared.SettingRepository {
	if t.settingRepo == nil {
		t.settingRepo = repository.NewSettingRepository(t.dbtx, t.logger)
	}
	return t.settingRepo
}

func (t *pgTx) Reads() shared.Reads {
	if t.reads == nil {
		t.reads = newPgReads(t.dbtx, t.logger)
	}
	return t.reads
}

// pgReads composes the read stores over one DBTX.
type pgReads struct {
	*readstore.CatalogReadStore
	*readstore.SaleReadStore
	*readstore.PendingOrderReadStore
	*readstore.DecisionReadStore
	*readstore.SettingReadStore
}

func newPgReads(dbtx db.DBTX, logger *slog.Logger) *pgReads {
	return &pgReads{
		CatalogReadStore:      readstore.NewCatalogReadStore(dbtx, logger),
		SaleReadStore:         readstore.NewSaleReadStore(dbtx, logger),
		PendingOrderReadStore: readstore.NewPendingOrderReadStore(dbtx, logger),
		DecisionReadStore:     readstore.NewDecisionReadStore(dbtx, logger),
		SettingReadStore:      readstore.NewSettingReadStore(dbtx, logger),
	}
}
