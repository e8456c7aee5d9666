package readstore

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
)

const listItemsSQL = `SELECT id, name, price::text, description FROM items ORDER BY id`

type CatalogReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCatalogReadStore(dbtx db.DBTX, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx, logger: logger}
}

func (r *CatalogReadStore) Items(ctx context.Context) ([]sale.Item, error) {
	rows, err := r.db.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list items", err)
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
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list items", err)
	}
	return items, nil
}
