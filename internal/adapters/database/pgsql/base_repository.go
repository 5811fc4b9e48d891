package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// mapWriteError translates constraint violations into application errors.
func mapWriteError(entity, id string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError(entity + " " + id + " violates " + pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return apperrors.NewValidationFailedError(entity + " references a missing record (" + pgErr.ConstraintName + ")")
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to save "+entity+" "+id, err)
}

// collect adapts a single-row scanner for pgx.CollectRows.
func collect[T any](scan func(pgx.Row) (T, error)) pgx.RowToFunc[T] {
	return func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	}
}

// queryList runs a select and scans every row, returning an empty slice when nothing matches.
func queryList[T any](ctx context.Context, db *pgxpool.Pool, entity string, scan func(pgx.Row) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+entity+" rows", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, collect(scan))
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect "+entity+" rows", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// queryOne runs a select expected to return at most one row.
func queryOne[T any](ctx context.Context, db *pgxpool.Pool, entity, id string, scan func(pgx.Row) (T, error), query string, args ...any) (*T, error) {
	item, err := scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(entity, id)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find "+entity+" "+id, err)
	}
	return &item, nil
}

// versionedUpdate describes a patch against a table carrying updated_at and version columns.
type versionedUpdate struct {
	entity   string
	table    string
	id       string
	columns  string
	expected *int
	now      time.Time
}

// buildPatchQuery appends the bookkeeping columns, the id filter and the optional
// version check to the SET clauses already on q.
func buildPatchQuery(u versionedUpdate, q sq.UpdateBuilder) (string, []any, error) {
	q = q.Set("updated_at", sq.Expr("GREATEST(updated_at, ?)", u.now)).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": u.id})
	if u.expected != nil {
		q = q.Where(sq.Eq{"version": *u.expected})
	}
	return q.Suffix("RETURNING " + u.columns).ToSql()
}

// applyPatch executes the patch with an optimistic version check.
// When no row is updated it distinguishes a missing row from a stale version.
func applyPatch[T any](ctx context.Context, base *BaseRepository, u versionedUpdate, q sq.UpdateBuilder, scan func(pgx.Row) (T, error)) (*T, error) {
	query, args, err := buildPatchQuery(u, q)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build "+u.entity+" update", err)
	}

	tx, err := base.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer base.Rollback(ctx, tx)

	item, err := scan(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, mapWriteError(u.entity, u.id, err)
		}
		var current int
		err = tx.QueryRow(ctx, "SELECT version FROM "+u.table+" WHERE id = $1", u.id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(u.entity, u.id)
		}
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read "+u.entity+" version", err)
		}
		if u.expected == nil {
			return nil, apperrors.NewNotFoundError(u.entity, u.id)
		}
		return nil, apperrors.NewConflictError(u.entity, u.id, *u.expected, current)
	}

	if err := base.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &item, nil
}

// setIf adds a SET clause when v is provided.
func setIf[T any](q sq.UpdateBuilder, column string, v *T) sq.UpdateBuilder {
	if v != nil {
		return q.Set(column, *v)
	}
	return q
}

// nullableJSON maps an empty document to SQL NULL.
func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
