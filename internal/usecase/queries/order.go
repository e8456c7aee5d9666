package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queries

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/usecase/shared"
)

type OrderQueries interface {
	ListPending(ctx context.Context, actor staff.Actor) ([]PendingOrderView, error)
	ListDecisions(ctx context.Context, actor staff.Actor, limit int) ([]DecisionView, error)
}

type orderQueriesImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewOrderQueries(uow shared.UnitOfWork, logger *slog.Logger) OrderQueries {
	return &orderQueriesImpl{uow: uow, logger: logger}
}

// ListPending returns queued orders in submission order.
func (q *orderQueriesImpl) ListPending(ctx context.Context, actor staff.Actor) ([]PendingOrderView, error) {
	if err := shared.RequireStaff(actor); err != nil {
		return nil, err
	}

	views := make([]PendingOrderView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		orders, err := reads.PendingOrders(ctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			views = append(views, toPendingOrderView(o))
		}
		return nil
	})
	if err != nil {
		if !degradable(err) {
			return nil, err
		}
		logDegraded(q.logger, "pending_orders", err)
		return []PendingOrderView{}, nil
	}
	return views, nil
}

// ListDecisions returns the most recent decisions first.
func (q *orderQueriesImpl) ListDecisions(ctx context.Context, actor staff.Actor, limit int) ([]DecisionView, error) {
	if err := shared.RequireStaff(actor); err != nil {
		return nil, err
	}
	limit = ValidateLimit(limit)

	views := make([]DecisionView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		decisions, err := reads.Decisions(ctx, limit)
		if err != nil {
			return err
		}
		for _, d := range decisions {
			views = append(views, toDecisionView(d))
		}
		return nil
	})
	if err != nil {
		if !degradable(err) {
			return nil, err
		}
		logDegraded(q.logger, "order_decisions", err)
		return []DecisionView{}, nil
	}
	return views, nil
}
