package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/infra/converter"

	"github.com/google/uuid"
)

const (
	pendingOrderColumns = `id, customer_name, items, total_amount, submitted_at`
	decisionColumns     = `order_id, customer_name, status, decided_by, decided_at, total_amount, line_count, submitted_at`
)

type reads struct {
	q      queryer
	logger *slog.Logger
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *reads) Items(ctx context.Context) ([]sale.Item, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, price, description FROM items ORDER BY id`)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list items", err)
	}
	defer rows.Close()

	items := make([]sale.Item, 0)
	for rows.Next() {
		var row converter.ItemRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Price, &row.Description); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to scan item", err)
		}
		item, err := converter.ItemRowToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(r.logger, "failed to list items", err)
	}
	return items, nil
}

func (r *reads) Sales(ctx context.Context) ([]sale.Record, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, item_name, quantity, amount, options, customer_name, order_id, created_at FROM sales ORDER BY seq`)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list sales", err)
	}
	defer rows.Close()

	records := make([]sale.Record, 0)
	for rows.Next() {
		var (
			row       converter.SaleRow
			customer  sql.NullString
			orderID   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&row.ID, &row.ItemName, &row.Quantity, &row.Amount, &row.Options, &customer, &orderID, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to scan sale", err)
		}
		row.CustomerName = customer.String
		if row.OrderID, err = parseNullUUID(orderID); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode sale order id", err)
		}
		if row.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode sale timestamp", err)
		}

		rec, err := converter.SaleRowToRecord(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "failed to decode sale", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(r.logger, "failed to list sales", err)
	}
	return records, nil
}

func (r *reads) PendingOrders(ctx context.Context) ([]*order.PendingOrder, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+pendingOrderColumns+` FROM pending_orders ORDER BY submitted_at, seq`)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list pending orders", err)
	}
	defer rows.Close()

	orders := make([]*order.PendingOrder, 0)
	for rows.Next() {
		o, err := scanPendingOrder(rows, r.logger)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(r.logger, "failed to list pending orders", err)
	}
	return orders, nil
}

func (r *reads) PendingOrderByID(ctx context.Context, id uuid.UUID) (*order.PendingOrder, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+pendingOrderColumns+` FROM pending_orders WHERE id = ?`, id.String())
	return scanPendingOrder(row, r.logger)
}

func (r *reads) DecisionFor(ctx context.Context, orderID uuid.UUID) (*order.Decision, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+decisionColumns+` FROM order_decisions WHERE order_id = ?`, orderID.String())
	d, err := scanDecision(row, r.logger)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *reads) Decisions(ctx context.Context, limit int) ([]order.Decision, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+decisionColumns+` FROM order_decisions ORDER BY decided_at DESC, order_id LIMIT ?`, limit)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list order decisions", err)
	}
	defer rows.Close()

	decisions := make([]order.Decision, 0)
	for rows.Next() {
		d, err := scanDecision(rows, r.logger)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(r.logger, "failed to list order decisions", err)
	}
	return decisions, nil
}

func (r *reads) InitialInvestment(ctx context.Context) (sale.Money, error) {
	var raw string
	err := r.q.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, converter.SettingInitialInvestment).Scan(&raw)
	if err != nil {
		return sale.Money{}, wrapErr(r.logger, "failed to read initial investment", err)
	}
	m, err := sale.ParseMoney(raw)
	if err != nil {
		return sale.Money{}, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "initial investment is malformed", err)
	}
	return m, nil
}

func scanPendingOrder(row rowScanner, logger *slog.Logger) (*order.PendingOrder, error) {
	var (
		data        converter.PendingOrderRow
		items       string
		submittedAt string
	)
	if err := row.Scan(&data.ID, &data.CustomerName, &items, &data.TotalAmount, &submittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr(logger, infra.KindNotFound, "pending order not found", err)
		}
		return nil, wrapErr(logger, "failed to scan pending order", err)
	}
	data.Items = []byte(items)

	var err error
	if data.SubmittedAt, err = parseTime(submittedAt); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindCorrupt, "failed to decode pending order timestamp", err)
	}
	o, err := converter.PendingOrderRowToDomain(data)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindCorrupt, "failed to decode pending order", err)
	}
	return o, nil
}

func scanDecision(row rowScanner, logger *slog.Logger) (order.Decision, error) {
	var (
		data                   converter.DecisionRow
		decidedAt, submittedAt string
	)
	err := row.Scan(&data.OrderID, &data.CustomerName, &data.Status, &data.DecidedBy,
		&decidedAt, &data.TotalAmount, &data.LineCount, &submittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order.Decision{}, infra.WrapRepoErr(logger, infra.KindNotFound, "order decision not found", err)
		}
		return order.Decision{}, wrapErr(logger, "failed to scan order decision", err)
	}
	if data.DecidedAt, err = parseTime(decidedAt); err != nil {
		return order.Decision{}, infra.WrapRepoErr(logger, infra.KindCorrupt, "failed to decode decision timestamp", err)
	}
	if data.SubmittedAt, err = parseTime(submittedAt); err != nil {
		return order.Decision{}, infra.WrapRepoErr(logger, infra.KindCorrupt, "failed to decode decision timestamp", err)
	}

	d, err := converter.DecisionRowToDomain(data)
	if err != nil {
		return order.Decision{}, infra.WrapRepoErr(logger, infra.KindCorrupt, "failed to decode order decision", err)
	}
	return d, nil
}
