package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=shared

import (
	"context"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-collection consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	PendingOrders() PendingOrderRepository
	Sales() SaleRepository
	Decisions() DecisionRepository
	Catalog() CatalogRepository
	Settings() SettingRepository
	Reads() Reads
}

// Reads sees the state of the enclosing transaction.
// Lookups of a single row return an infra.KindNotFound error when absent.
type Reads interface {
	Items(ctx context.Context) ([]sale.Item, error)
	Sales(ctx context.Context) ([]sale.Record, error)
	PendingOrders(ctx context.Context) ([]*order.PendingOrder, error)
	PendingOrderByID(ctx context.Context, id uuid.UUID) (*order.PendingOrder, error)
	DecisionFor(ctx context.Context, orderID uuid.UUID) (*order.Decision, error)
	Decisions(ctx context.Context, limit int) ([]order.Decision, error)
	InitialInvestment(ctx context.Context) (sale.Money, error)
}

type PendingOrderRepository interface {
	Insert(ctx context.Context, o *order.PendingOrder) error
	// Take deletes the order and returns it. Two concurrent takes of one id cannot both succeed.
	Take(ctx context.Context, id uuid.UUID) (*order.PendingOrder, error)
}

type SaleRepository interface {
	Append(ctx context.Context, records []sale.Record) error
	Clear(ctx context.Context) (int64, error)
}

type DecisionRepository interface {
	Record(ctx context.Context, d order.Decision) error
}

type CatalogRepository interface {
	// SeedIfMissing inserts items whose name is not yet present and returns how many were added.
	SeedIfMissing(ctx context.Context, items []sale.Item) (int, error)
}

type SettingRepository interface {
	// InitInvestmentIfAbsent reports whether the value was written.
	InitInvestmentIfAbsent(ctx context.Context, amount sale.Money) (bool, error)
}
