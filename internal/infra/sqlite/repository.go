package sqlite

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/infra/converter"

	"github.com/google/uuid"
)

type pendingOrderRepo struct {
	q      queryer
	logger *slog.Logger
}

func (r *pendingOrderRepo) Insert(ctx context.Context, o *order.PendingOrder) error {
	row, err := converter.PendingOrderToRow(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to encode pending order", err)
	}
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO pending_orders (id, customer_name, items, total_amount, submitted_at) VALUES (?, ?, ?, ?, ?)`,
		row.ID.String(), row.CustomerName, string(row.Items), row.TotalAmount, formatTime(row.SubmittedAt),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to insert pending order", err)
	}
	return nil
}

func (r *pendingOrderRepo) Take(ctx context.Context, id uuid.UUID) (*order.PendingOrder, error) {
	row := r.q.QueryRowContext(ctx,
		`DELETE FROM pending_orders WHERE id = ? RETURNING `+pendingOrderColumns,
		id.String(),
	)
	o, err := scanPendingOrder(row, r.logger)
	if err != nil {
		return nil, err
	}
	return o, nil
}

type saleRepo struct {
	q      queryer
	logger *slog.Logger
}

func (r *saleRepo) Append(ctx context.Context, records []sale.Record) error {
	for _, rec := range records {
		row := converter.RecordToSaleRow(rec)
		_, err := r.q.ExecContext(ctx,
			`INSERT INTO sales (id, item_name, quantity, amount, options, customer_name, order_id, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			row.ID.String(), row.ItemName, row.Quantity, row.Amount, row.Options,
			nullString(row.CustomerName), nullUUID(row.OrderID), formatTime(row.CreatedAt),
		)
		if err != nil {
			return wrapErr(r.logger, "failed to append sales", err)
		}
	}
	return nil
}

func (r *saleRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM sales`)
	if err != nil {
		return 0, wrapErr(r.logger, "failed to clear sales", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapErr(r.logger, "failed to count cleared sales", err)
	}
	return n, nil
}

type decisionRepo struct {
	q      queryer
	logger *slog.Logger
}

func (r *decisionRepo) Record(ctx context.Context, d order.Decision) error {
	row := converter.DecisionToRow(d)
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO order_decisions
			(order_id, customer_name, status, decided_by, decided_at, total_amount, line_count, submitted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.OrderID.String(), row.CustomerName, row.Status, row.DecidedBy,
		formatTime(row.DecidedAt), row.TotalAmount, row.LineCount, formatTime(row.SubmittedAt),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to record order decision", err)
	}
	return nil
}

type catalogRepo struct {
	q      queryer
	logger *slog.Logger
}

func (r *catalogRepo) SeedIfMissing(ctx context.Context, items []sale.Item) (int, error) {
	added := 0
	for _, it := range items {
		res, err := r.q.ExecContext(ctx,
			`INSERT OR IGNORE INTO items (id, name, price, description) VALUES (?, ?, ?, ?)`,
			it.ID, it.Name, it.Price.String(), it.Description,
		)
		if err != nil {
			return added, wrapErr(r.logger, "failed to seed catalog item", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return added, wrapErr(r.logger, "failed to seed catalog item", err)
		}
		added += int(n)
	}
	return added, nil
}

type settingRepo struct {
	q      queryer
	logger *slog.Logger
}

func (r *settingRepo) InitInvestmentIfAbsent(ctx context.Context, amount sale.Money) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		converter.SettingInitialInvestment, amount.String(),
	)
	if err != nil {
		return false, wrapErr(r.logger, "failed to initialize investment", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr(r.logger, "failed to initialize investment", err)
	}
	return n == 1, nil
}
