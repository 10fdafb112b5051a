package database

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	sqldb "github.com/mhike/mhike/internal/database/sqlc"
)

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

func optionalString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func queriesFromContext(ctx *Context) *sqldb.Queries {
	if ctx == nil {
		return nil
	}
	if ctx.Queries != nil {
		return ctx.Queries
	}
	if ctx.DB == nil {
		return nil
	}
	return sqldb.New(ctx.DB)
}

func loggerFromContext(ctx *Context) *slog.Logger {
	if ctx == nil || ctx.Logger == nil {
		return slog.Default()
	}
	return ctx.Logger
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a fragment into a LIKE pattern that matches it
// literally anywhere in the column. Pair it with ESCAPE '\'.
func containsPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}

func withTx(ctx context.Context, dbCtx *Context, fn func(*sqldb.Queries) error) error {
	if dbCtx == nil || dbCtx.DB == nil {
		return ErrMissingContext
	}

	tx, err := dbCtx.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(queriesFromContext(dbCtx).WithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return nil
}
