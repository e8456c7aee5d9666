package commands

//go:generate mockgen -source=provision.go -destination=../../../tests/mock/commands/provision.go -package=commands

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/shared"
)

var ErrEmptyCatalog = errs.New("catalog has no items")

type ProvisionResult struct {
	ItemsAdded    int
	InvestmentSet bool
}

type ProvisionCommands interface {
	Provision(ctx context.Context, items []sale.Item, initialInvestment sale.Money) (*ProvisionResult, error)
}

type provisionUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewProvisionUseCase(uow shared.UnitOfWork, logger *slog.Logger) ProvisionCommands {
	return &provisionUseCaseImpl{uow: uow, logger: logger}
}

// Provision seeds catalog items that are missing by name and sets the initial investment
// only when none is stored yet. Running it again changes nothing.
func (uc *provisionUseCaseImpl) Provision(ctx context.Context, items []sale.Item, initialInvestment sale.Money) (*ProvisionResult, error) {
	if len(items) == 0 {
		return nil, errs.Mark(ErrEmptyCatalog, ErrValidation)
	}

	var result ProvisionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = ProvisionResult{}

		added, err := tx.Catalog().SeedIfMissing(ctx, items)
		if err != nil {
			return err
		}
		set, err := tx.Settings().InitInvestmentIfAbsent(ctx, initialInvestment)
		if err != nil {
			return err
		}
		result = ProvisionResult{ItemsAdded: added, InvestmentSet: set}
		return nil
	})
	if err != nil {
		return nil, shared.StorageError(err, "provision store")
	}

	uc.logger.Info("store provisioned",
		"items_added", result.ItemsAdded,
		"investment_set", result.InvestmentSet)
	return &result, nil
}
