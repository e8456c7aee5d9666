package commands

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commands

import (
	"context"
	"log/slog"
	"time"

	"stand-ledger/internal/domain/order"
	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/pkg/clock"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const reconcileTimeout = 10 * time.Second

type SubmitOrderRequest struct {
	CustomerName string
	Lines        []LineInput
}

type SubmitOrderResult struct {
	OrderID     uuid.UUID
	TotalAmount sale.Money
	SubmittedAt time.Time
}

type OrderCommands interface {
	SubmitOrder(ctx context.Context, req SubmitOrderRequest) (*SubmitOrderResult, error)
	ApproveOrder(ctx context.Context, actor staff.Actor, orderID uuid.UUID) error
	RejectOrder(ctx context.Context, actor staff.Actor, orderID uuid.UUID) error
}

type orderUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Recorder
	logger  *slog.Logger
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics Recorder, logger *slog.Logger) OrderCommands {
	return &orderUseCaseImpl{uow: uow, clock: clk, metrics: metrics, logger: logger}
}

func (uc *orderUseCaseImpl) SubmitOrder(ctx context.Context, req SubmitOrderRequest) (*SubmitOrderResult, error) {
	lines, err := buildLines(req.Lines)
	if err != nil {
		return nil, err
	}
	o, err := order.NewPendingOrder(uuid.New(), req.CustomerName, lines, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PendingOrders().Insert(ctx, o)
	})
	if err != nil {
		return nil, shared.StorageError(err, "submit order")
	}

	uc.metrics.OrderSubmitted(o.TotalAmount())
	uc.logger.Info("order submitted",
		"order_id", o.ID().String(),
		"customer", o.CustomerName(),
		"lines", len(o.Lines()),
		"total", o.TotalAmount().String())

	return &SubmitOrderResult{
		OrderID:     o.ID(),
		TotalAmount: o.TotalAmount(),
		SubmittedAt: o.SubmittedAt(),
	}, nil
}

// ApproveOrder removes the order from the queue and appends its lines to the ledger in one
// transaction. When the transaction fails after the order was taken, reconcileApproval decides
// whether the approval landed, and re-queues the order if it did not.
func (uc *orderUseCaseImpl) ApproveOrder(ctx context.Context, actor staff.Actor, orderID uuid.UUID) error {
	if err := shared.RequireStaff(actor); err != nil {
		return err
	}

	var taken *order.PendingOrder
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken = nil

		o, err := tx.PendingOrders().Take(ctx, orderID)
		if err != nil {
			return err
		}
		taken = o

		now := uc.clock.Now()
		if err := o.Approve(actor.Identity, now); err != nil {
			return err
		}
		records, err := o.SaleRecords(uuid.New, now)
		if err != nil {
			return err
		}
		if err := tx.Sales().Append(ctx, records); err != nil {
			return errs.Mark(errs.Wrap(err, "append approved order to ledger"), ErrPartialApproval)
		}
		decision, err := o.Decision()
		if err != nil {
			return err
		}
		return tx.Decisions().Record(ctx, decision)
	})

	switch {
	case err == nil:
		uc.approved(taken, actor)
		return nil
	case taken == nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrOrderNotFound)
	case taken == nil:
		return shared.StorageError(err, "approve order")
	default:
		return uc.reconcileApproval(ctx, taken, actor, err)
	}
}

func (uc *orderUseCaseImpl) approved(o *order.PendingOrder, actor staff.Actor) {
	uc.metrics.OrderDecided(order.StatusApproved)
	uc.metrics.SalesRecorded(SourceOrder, len(o.Lines()), o.TotalAmount())
	uc.logger.Info("order approved",
		"order_id", o.ID().String(),
		"customer", o.CustomerName(),
		"approved_by", actor.Identity,
		"records", len(o.Lines()),
		"total", o.TotalAmount().String())
}

func (uc *orderUseCaseImpl) reconcileApproval(ctx context.Context, o *order.PendingOrder, actor staff.Actor, cause error) error {
	// the caller's context may already be done; reconciliation must still run
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reconcileTimeout)
	defer cancel()

	var outcome string
	var decided *order.Decision
	err := uc.uow.Within(rctx, func(ctx context.Context, tx shared.Tx) error {
		outcome, decided = "", nil

		_, err := tx.Reads().PendingOrderByID(ctx, o.ID())
		if err == nil {
			outcome = ReconcileRequeued
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		d, err := tx.Reads().DecisionFor(ctx, o.ID())
		if err == nil {
			decided = d
			if d.Status == order.StatusApproved && d.DecidedBy == actor.Identity {
				outcome = ReconcileCommitted
			} else {
				outcome = ReconcileDecided
			}
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		outcome = ReconcileRequeued
		return tx.PendingOrders().Insert(ctx, o.Requeue())
	})
	if err != nil {
		uc.metrics.ApprovalReconciled(ReconcileFailed)
		uc.logger.Error("approval requires manual reconciliation",
			append(orderLogAttrs(o),
				"approved_by", actor.Identity,
				"cause", cause.Error(),
				"error", err.Error(),
				"stack", errs.ExtractStackLines(cause, 12))...)
		return errs.Mark(errs.Mark(errs.Wrap(cause, "approve order"), ErrPartialApproval), ErrReconciliationRequired)
	}

	uc.metrics.ApprovalReconciled(outcome)
	switch outcome {
	case ReconcileCommitted:
		uc.logger.Warn("approval committed despite error", "order_id", o.ID().String(), "error", cause.Error())
		uc.approved(o, actor)
		return nil
	case ReconcileDecided:
		uc.logger.Warn("order decided concurrently during approval",
			"order_id", o.ID().String(),
			"status", decided.Status.String(),
			"decided_by", decided.DecidedBy)
		return errs.Mark(errs.Wrap(cause, "order was decided concurrently"), ErrPartialApproval)
	default:
		uc.logger.Warn("approval failed, order is back in the queue", "order_id", o.ID().String(), "error", cause.Error())
		return errs.Mark(errs.Wrap(cause, "approve order"), ErrPartialApproval)
	}
}

func (uc *orderUseCaseImpl) RejectOrder(ctx context.Context, actor staff.Actor, orderID uuid.UUID) error {
	if err := shared.RequireStaff(actor); err != nil {
		return err
	}

	var rejected *order.PendingOrder
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rejected = nil

		o, err := tx.PendingOrders().Take(ctx, orderID)
		if err != nil {
			return err
		}
		if err := o.Reject(actor.Identity, uc.clock.Now()); err != nil {
			return err
		}
		decision, err := o.Decision()
		if err != nil {
			return err
		}
		if err := tx.Decisions().Record(ctx, decision); err != nil {
			return err
		}
		rejected = o
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrOrderNotFound)
		}
		return shared.StorageError(err, "reject order")
	}

	uc.metrics.OrderDecided(order.StatusRejected)
	uc.logger.Info("order rejected",
		"order_id", rejected.ID().String(),
		"customer", rejected.CustomerName(),
		"rejected_by", actor.Identity)
	return nil
}

// orderLogAttrs carries everything needed to rebuild the order by hand.
func orderLogAttrs(o *order.PendingOrder) []any {
	lines := make([]map[string]any, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, map[string]any{
			"item":     l.ItemName(),
			"quantity": l.Quantity(),
			"amount":   l.Amount().String(),
			"options":  l.Options(),
		})
	}
	return []any{
		"order_id", o.ID().String(),
		"customer", o.CustomerName(),
		"submitted_at", o.SubmittedAt().Format(time.RFC3339Nano),
		"total", o.TotalAmount().String(),
		"lines", lines,
	}
}
