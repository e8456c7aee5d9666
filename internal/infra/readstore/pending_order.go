package readstore

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pendingOrderColumns  = `id, customer_name, items, total_amount::text, submitted_at`
	listPendingOrdersSQL = `SELECT ` + pendingOrderColumns + ` FROM pending_orders ORDER BY submitted_at, seq`
	getPendingOrderSQL   = `SELECT ` + pendingOrderColumns + ` FROM pending_orders WHERE id = $1`
)

type PendingOrderReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPendingOrderReadStore(dbtx db.DBTX, logger *slog.Logger) *PendingOrderReadStore {
	return &PendingOrderReadStore{db: dbtx, logger: logger}
}

// PendingOrders returns the queue in submission order. A re-queued order keeps its original place.
func (r *PendingOrderReadStore) PendingOrders(ctx context.Context) ([]*order.PendingOrder, error) {
	rows, err := r.db.Query(ctx, listPendingOrdersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list pending orders", err)
	}
	defer rows.Close()

	orders := make([]*order.PendingOrder, 0)
	for rows.Next() {
		o, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list pending orders", err)
	}
	return orders, nil
}

func (r *PendingOrderReadStore) PendingOrderByID(ctx context.Context, id uuid.UUID) (*order.PendingOrder, error) {
	o, err := r.scan(r.db.QueryRow(ctx, getPendingOrderSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "pending order not found", err)
		}
		return nil, err
	}
	return o, nil
}

func (r *PendingOrderReadStore) scan(row pgx.Row) (*order.PendingOrder, error) {
	var (
		data        converter.PendingOrderRow
		submittedAt pgtype.Timestamptz
	)
	if err := row.Scan(&data.ID, &data.CustomerName, &data.Items, &data.TotalAmount, &submittedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to scan pending order", err)
	}
	data.SubmittedAt = pgconv.TimeFromPgtype(submittedAt)

	o, err := converter.PendingOrderRowToDomain(data)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode pending order", err)
	}
	return o, nil
}
