package repository

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
)

const initSettingSQL = `INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`

type SettingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSettingRepository(dbtx db.DBTX, logger *slog.Logger) *SettingRepository {
	return &SettingRepository{db: dbtx, logger: logger}
}

func (r *SettingRepository) InitInvestmentIfAbsent(ctx context.Context, amount sale.Money) (bool, error) {
	tag, err := r.db.Exec(ctx, initSettingSQL, converter.SettingInitialInvestment, amount.String())
	if err != nil {
		return false, wrapPgErr(r.logger, "failed to initialize investment", err)
	}
	return tag.RowsAffected() == 1, nil
}
