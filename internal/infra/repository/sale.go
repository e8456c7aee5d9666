package repository

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

const (
	insertSaleSQL = `INSERT INTO sales (id, item_name, quantity, amount, options, customer_name, order_id, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)`
	clearSalesSQL = `DELETE FROM sales`
)

type SaleRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSaleRepository(dbtx db.DBTX, logger *slog.Logger) *SaleRepository {
	return &SaleRepository{db: dbtx, logger: logger}
}

// Append sends all records in one batch. Callers run it inside a transaction so the batch lands whole or not at all.
func (r *SaleRepository) Append(ctx context.Context, records []sale.Record) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		row := converter.RecordToSaleRow(rec)
		customer := row.CustomerName
		batch.Queue(insertSaleSQL,
			pgconv.UUIDToPgtype(row.ID),
			row.ItemName,
			row.Quantity,
			row.Amount,
			row.Options,
			pgconv.StringPtrToPgtype(&customer),
			pgconv.UUIDPtrToPgtype(row.OrderID),
			pgconv.TimeToPgtype(row.CreatedAt),
		)
	}

	results := r.db.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return wrapPgErr(r.logger, "failed to append sales", err)
		}
	}
	if err := results.Close(); err != nil {
		return wrapPgErr(r.logger, "failed to append sales", err)
	}
	return nil
}

func (r *SaleRepository) Clear(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, clearSalesSQL)
	if err != nil {
		return 0, wrapPgErr(r.logger, "failed to clear sales", err)
	}
	return tag.RowsAffected(), nil
}
