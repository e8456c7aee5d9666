package repository

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra/db"
)

const seedItemSQL = `INSERT INTO items (id, name, price, description)
		VALUES ($1, $2, $3::numeric, $4)
		ON CONFLICT DO NOTHING`

type CatalogRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCatalogRepository(dbtx db.DBTX, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{db: dbtx, logger: logger}
}

// SeedIfMissing skips items whose id or name is already present; existing rows are never updated.
func (r *CatalogRepository) SeedIfMissing(ctx context.Context, items []sale.Item) (int, error) {
	added := 0
	for _, it := range items {
		tag, err := r.db.Exec(ctx, seedItemSQL, it.ID, it.Name, it.Price.String(), it.Description)
		if err != nil {
			return added, wrapPgErr(r.logger, "failed to seed catalog item", err)
		}
		added += int(tag.RowsAffected())
	}
	return added, nil
}
