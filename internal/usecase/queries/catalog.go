package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queries

import (
	"context"
	"log/slog"

	"stand-ledger/internal/usecase/shared"
)

type CatalogQueries interface {
	ListItems(ctx context.Context) ([]ItemView, error)
}

type catalogQueriesImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewCatalogQueries(uow shared.UnitOfWork, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{uow: uow, logger: logger}
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context) ([]ItemView, error) {
	views := make([]ItemView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		items, err := reads.Items(ctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			views = append(views, ItemView(it))
		}
		return nil
	})
	if err != nil {
		if !degradable(err) {
			return nil, err
		}
		logDegraded(q.logger, "items", err)
		return []ItemView{}, nil
	}
	return views, nil
}
