package repository

import (
	"errors"
	"log/slog"

	"stand-ledger/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation = "23505"
	pgErrCodeCheckViolation  = "23514"
)

// wrapPgErr classifies a driver error into a repository error kind.
// Serialization and deadlock errors keep their *pgconn.PgError in the chain so the unit of work can retry them.
func wrapPgErr(logger *slog.Logger, msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
		case pgErrCodeCheckViolation:
			return infra.WrapRepoErr(logger, infra.KindCorrupt, msg, err)
		}
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}
