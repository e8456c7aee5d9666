package queries

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/queries/sale.go -package=queries

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/domain/summary"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type ItemTotalView struct {
	Name     string
	Quantity int
	Amount   sale.Money
}

type SummaryView struct {
	InitialInvestment   sale.Money
	TotalSales          sale.Money
	RemainingInvestment sale.Money
	PercentRecouped     decimal.Decimal
	SalesByItem         []ItemTotalView
}

type SaleQueries interface {
	ListSales(ctx context.Context) ([]SaleView, error)
	GetSummary(ctx context.Context) (*SummaryView, error)
}

type saleQueriesImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewSaleQueries(uow shared.UnitOfWork, logger *slog.Logger) SaleQueries {
	return &saleQueriesImpl{uow: uow, logger: logger}
}

// ListSales returns the ledger in insertion order.
func (q *saleQueriesImpl) ListSales(ctx context.Context) ([]SaleView, error) {
	views := make([]SaleView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		records, err := reads.Sales(ctx)
		if err != nil {
			return err
		}
		for _, r := range records {
			views = append(views, toSaleView(r))
		}
		return nil
	})
	if err != nil {
		if !degradable(err) {
			return nil, err
		}
		logDegraded(q.logger, "sales", err)
		return []SaleView{}, nil
	}
	return views, nil
}

// GetSummary reads the investment and the ledger in one snapshot and recomputes every figure.
// An unreadable ledger counts as empty; an unreadable investment fails the call.
func (q *saleQueriesImpl) GetSummary(ctx context.Context) (*SummaryView, error) {
	var initial sale.Money
	var records []sale.Record
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		inv, err := reads.InitialInvestment(ctx)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "read initial investment"), shared.ErrInvestmentUnavailable)
		}
		initial = inv

		recs, err := reads.Sales(ctx)
		if err != nil {
			if !degradable(err) {
				return err
			}
			logDegraded(q.logger, "sales", err)
			recs = nil
		}
		records = recs
		return nil
	})
	if err != nil {
		return nil, err
	}

	s := summary.Compute(initial, records)
	byItem := make([]ItemTotalView, 0, len(s.SalesByItem))
	for _, it := range s.SalesByItem {
		byItem = append(byItem, ItemTotalView(it))
	}
	return &SummaryView{
		InitialInvestment:   s.InitialInvestment,
		TotalSales:          s.TotalSales,
		RemainingInvestment: s.RemainingInvestment,
		PercentRecouped:     s.PercentRecouped,
		SalesByItem:         byItem,
	}, nil
}
