package readstore

import (
	"context"
	"log/slog"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/infra"
	"stand-ledger/internal/infra/converter"
	"stand-ledger/internal/infra/db"
	"stand-ledger/internal/pkg/pgconv"
)

const getSettingSQL = `SELECT value FROM settings WHERE key = $1`

type SettingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSettingReadStore(dbtx db.DBTX, logger *slog.Logger) *SettingReadStore {
	return &SettingReadStore{db: dbtx, logger: logger}
}

// InitialInvestment has no safe default: a missing or malformed value is an error.
func (r *SettingReadStore) InitialInvestment(ctx context.Context) (sale.Money, error) {
	var raw string
	if err := r.db.QueryRow(ctx, getSettingSQL, converter.SettingInitialInvestment).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return sale.Money{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "initial investment not provisioned", err)
		}
		return sale.Money{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read initial investment", err)
	}
	m, err := sale.ParseMoney(raw)
	if err != nil {
		return sale.Money{}, infra.WrapRepoErr(r.logger, infra.KindCorrupt, "initial investment is malformed", err)
	}
	return m, nil
}
