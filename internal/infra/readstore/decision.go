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
	decisionColumns  = `order_id, customer_name, status, decided_by, decided_at, total_amount::text, line_count, submitted_at`
	getDecisionSQL   = `SELECT ` + decisionColumns + ` FROM order_decisions WHERE order_id = $1`
	listDecisionsSQL = `SELECT ` + decisionColumns + ` FROM order_decisions ORDER BY decided_at DESC, order_id LIMIT $1`
)

type DecisionReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDecisionReadStore(dbtx db.DBTX, logger *slog.Logger) *DecisionReadStore {
	return &DecisionReadStore{db: dbtx, logger: logger}
}

func (r *DecisionReadStore) DecisionFor(ctx context.Context, orderID uuid.UUID) (*order.Decision, error) {
	d, err := r.scan(r.db.QueryRow(ctx, getDecisionSQL, pgconv.UUIDToPgtype(orderID)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "order decision not found", err)
		}
		return nil, err
	}
	return &d, nil
}

// Decisions returns the most recent decisions first.
func (r *DecisionReadStore) Decisions(ctx context.Context, limit int) ([]order.Decision, error) {
	rows, err := r.db.Query(ctx, listDecisionsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list order decisions", err)
	}
	defer rows.Close()

	decisions := make([]order.Decision, 0)
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list order decisions", err)
	}
	return decisions, nil
}

func (r *DecisionReadStore) scan(row pgx.Row) (order.Decision, error) {
	var (
		data                   converter.DecisionRow
		decidedAt, submittedAt pgtype.Timestamptz
	)
	err := row.Scan(&data.OrderID, &data.CustomerName, &data.Status, &data.DecidedBy,
		&decidedAt, &data.TotalAmount, &data.LineCount, &submittedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return order.Decision{}, err
		}
		return order.Decision{}, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to scan order decision", err)
	}
	data.DecidedAt = pgconv.TimeFromPgtype(decidedAt)
	data.SubmittedAt = pgconv.TimeFromPgtype(submittedAt)

	d, err := converter.DecisionRowToDomain(data)
	if err != nil {
		return order.Decision{}, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode order decision", err)
	}
	return d, nil
}
