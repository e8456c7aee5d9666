package sqlite

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"stand-ledger/internal/infra"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timeLayout is fixed width so that text order equals time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *uuid.UUID) sql.NullString {
	if id == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: id.String(), Valid: true}
}

func parseNullUUID(ns sql.NullString) (*uuid.UUID, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// wrapErr classifies a driver error into a repository error kind.
func wrapErr(logger *slog.Logger, msg string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return infra.WrapRepoErr(logger, infra.KindCorrupt, msg, err)
		}
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}
