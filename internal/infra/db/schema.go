package db

import (
	"context"
	"fmt"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		price NUMERIC NOT NULL CHECK (price >= 0),
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		seq BIGSERIAL PRIMARY KEY,
		id UUID NOT NULL UNIQUE,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		amount NUMERIC NOT NULL CHECK (amount >= 0),
		options TEXT NOT NULL DEFAULT '',
		customer_name TEXT,
		order_id UUID,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sales_order_id_idx ON sales (order_id) WHERE order_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS pending_orders (
		seq BIGSERIAL PRIMARY KEY,
		id UUID NOT NULL UNIQUE,
		customer_name TEXT NOT NULL CHECK (customer_name <> ''),
		items JSONB NOT NULL,
		total_amount NUMERIC NOT NULL CHECK (total_amount >= 0),
		submitted_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_decisions (
		order_id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('approved', 'rejected')),
		decided_by TEXT NOT NULL,
		decided_at TIMESTAMPTZ NOT NULL,
		total_amount NUMERIC NOT NULL,
		line_count INTEGER NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS order_decisions_decided_at_idx ON order_decisions (decided_at DESC)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

func Migrate(ctx context.Context, db DBTX) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i+1, err)
		}
	}
	return nil
}
