package commands

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/commands/sale.go -package=commands

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/pkg/clock"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoSaleLines = errs.New("at least one sale line is required")

type RecordSalesResult struct {
	RecordIDs []uuid.UUID
	Total     sale.Money
}

type SaleCommands interface {
	RecordDirectSales(ctx context.Context, lines []LineInput) (*RecordSalesResult, error)
	ClearSalesHistory(ctx context.Context, actor staff.Actor) (int64, error)
}

type saleUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Recorder
	logger  *slog.Logger
}

func NewSaleUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics Recorder, logger *slog.Logger) SaleCommands {
	return &saleUseCaseImpl{uow: uow, clock: clk, metrics: metrics, logger: logger}
}

// RecordDirectSales appends counter sales as one batch; no line is stored unless all are valid.
func (uc *saleUseCaseImpl) RecordDirectSales(ctx context.Context, inputs []LineInput) (*RecordSalesResult, error) {
	if len(inputs) == 0 {
		return nil, errs.Mark(ErrNoSaleLines, ErrValidation)
	}
	lines, err := buildLines(inputs)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	records := make([]sale.Record, 0, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		r := sale.NewDirectRecord(uuid.New(), l, now)
		records = append(records, r)
		ids = append(ids, r.ID())
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sales().Append(ctx, records)
	})
	if err != nil {
		return nil, shared.StorageError(err, "record direct sales")
	}

	total := sale.SumAmounts(lines)
	uc.metrics.SalesRecorded(SourceDirect, len(records), total)
	uc.logger.Info("direct sales recorded", "records", len(records), "total", total.String())

	return &RecordSalesResult{RecordIDs: ids, Total: total}, nil
}

// ClearSalesHistory empties the ledger. The initial investment is kept.
func (uc *saleUseCaseImpl) ClearSalesHistory(ctx context.Context, actor staff.Actor) (int64, error) {
	if err := shared.RequireStaff(actor); err != nil {
		return 0, err
	}

	var removed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Sales().Clear(ctx)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, shared.StorageError(err, "clear sales history")
	}

	uc.metrics.LedgerCleared(removed)
	uc.logger.Warn("sales history cleared", "cleared_by", actor.Identity, "removed", removed)
	return removed, nil
}
