package readstore

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const listSalesSQL = `SELECT id, item_name, quantity, amount::text, options, customer_name, order_id, created_at
		FROM sales ORDER BY seq`

type SaleReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSaleReadStore(dbtx db.DBTX, logger *slog.Logger) *SaleReadStore {
	return &SaleReadStore{db: dbtx, logger: logger}
}

// Sales returns the ledger in append order.
func (r *SaleReadStore) Sales(ctx context.Context) ([]sale.Record, error) {
	rows, err := r.db.Query(ctx, listSalesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list sales", err)
	}
	defer rows.Close()

	records := make([]sale.Record, 0)
	for rows.Next() {
		var (
			row       converter.SaleRow
			customer  pgtype.Text
			orderID   pgtype.UUID
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&row.ID, &row.ItemName, &row.Quantity, &row.Amount, &row.Options, &customer, &orderID, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to scan sale", err)
		}
		row.CustomerName = pgconv.StringFromPgtype(customer)
		row.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
		row.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		rec, err := converter.SaleRowToRecord(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode sale", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list sales", err)
	}
	return records, nil
}
