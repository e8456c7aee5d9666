package repository

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertPendingOrderSQL = `INSERT INTO pending_orders (id, customer_name, items, total_amount, submitted_at)
		VALUES ($1, $2, $3::jsonb, $4::numeric, $5)`
	// Row locking on DELETE makes a second concurrent take of the same id see zero rows.
	takePendingOrderSQL = `DELETE FROM pending_orders WHERE id = $1
		RETURNING id, customer_name, items, total_amount::text, submitted_at`
)

type PendingOrderRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPendingOrderRepository(dbtx db.DBTX, logger *slog.Logger) *PendingOrderRepository {
	return &PendingOrderRepository{db: dbtx, logger: logger}
}

func (r *PendingOrderRepository) Insert(ctx context.Context, o *order.PendingOrder) error {
	row, err := converter.PendingOrderToRow(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to encode pending order", err)
	}
	_, err = r.db.Exec(ctx, insertPendingOrderSQL,
		pgconv.UUIDToPgtype(row.ID),
		row.CustomerName,
		string(row.Items),
		row.TotalAmount,
		pgconv.TimeToPgtype(row.SubmittedAt),
	)
	if err != nil {
		return wrapPgErr(r.logger, "failed to insert pending order", err)
	}
	return nil
}

func (r *PendingOrderRepository) Take(ctx context.Context, id uuid.UUID) (*order.PendingOrder, error) {
	var row converter.PendingOrderRow
	var submittedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, takePendingOrderSQL, pgconv.UUIDToPgtype(id)).
		Scan(&row.ID, &row.CustomerName, &row.Items, &row.TotalAmount, &submittedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "pending order not found", err)
		}
		return nil, wrapPgErr(r.logger, "failed to take pending order", err)
	}
	row.SubmittedAt = pgconv.TimeFromPgtype(submittedAt)

	o, err := converter.PendingOrderRowToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode pending order", err)
	}
	return o, nil
}
