package repository

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/pkg/pgconv"
)

const insertDecisionSQL = `INSERT INTO order_decisions
		(order_id, customer_name, status, decided_by, decided_at, total_amount, line_count, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`

type DecisionRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDecisionRepository(dbtx db.DBTX, logger *slog.Logger) *DecisionRepository {
	return &DecisionRepository{db: dbtx, logger: logger}
}

func (r *DecisionRepository) Record(ctx context.Context, d order.Decision) error {
	row := converter.DecisionToRow(d)
	_, err := r.db.Exec(ctx, insertDecisionSQL,
		pgconv.UUIDToPgtype(row.OrderID),
		row.CustomerName,
		row.Status,
		row.DecidedBy,
		pgconv.TimeToPgtype(row.DecidedAt),
		row.TotalAmount,
		row.LineCount,
		pgconv.TimeToPgtype(row.SubmittedAt),
	)
	if err != nil {
		return wrapPgErr(r.logger, "failed to record order decision", err)
	}
	return nil
}
