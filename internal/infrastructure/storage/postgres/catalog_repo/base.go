// Package catalog_repo provides the PostgreSQL repositories of the league
// master data, built on one generic data accessor.
package catalog_repo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/infrastructure/storage/postgres"
)

// EntityConfig describes how one record type is stored.
type EntityConfig[T any] struct {
	// Entity is the name used in errors and the change log.
	Entity string
	Table  string

	// Keys are the identifying columns, in order.
	Keys []string

	// GeneratedKey marks a single identity key assigned by the database.
	// Generated keys are omitted from INSERT.
	GeneratedKey bool

	Audit   func(*T) *entity.AuditFields
	Columns ColumnMap[T]
}

// newConfig completes cfg with its column map. Keys that are not bound are a
// programming error and panic at package initialisation.
func newConfig[T any](cfg EntityConfig[T], cols ...Column[T]) EntityConfig[T] {
	cfg.Columns = NewColumnMap(cfg.Audit, cols...)
	if len(cfg.Keys) == 0 {
		panic(fmt.Sprintf("%s: no key columns", cfg.Table))
	}
	if cfg.GeneratedKey && len(cfg.Keys) != 1 {
		panic(fmt.Sprintf("%s: generated key must be a single column", cfg.Table))
	}
	for _, k := range cfg.Keys {
		if _, ok := cfg.Columns.Lookup(k); !ok {
			panic(fmt.Sprintf("%s: key column %q not bound", cfg.Table, k))
		}
	}
	return cfg
}

// Accessor executes composed statements for one record type and materialises
// rows through its column map. Every statement runs on the querier of the
// ambient context; the accessor never opens transactions or retries.
type Accessor[T any] struct {
	cfg EntityConfig[T]
	db  postgres.QuerierProvider
	now func() time.Time
}

// NewAccessor creates a data accessor.
func NewAccessor[T any](db postgres.QuerierProvider, cfg EntityConfig[T]) *Accessor[T] {
	return &Accessor[T]{cfg: cfg, db: db, now: time.Now}
}

// Config exposes the entity configuration.
func (a *Accessor[T]) Config() EntityConfig[T] {
	return a.cfg
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (a *Accessor[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SelectSingle returns the only row matched by sql. Zero rows is NOT_FOUND,
// more than one is an INTEGRITY_ERROR.
func (a *Accessor[T]) SelectSingle(ctx context.Context, sql string, args ...any) (*T, error) {
	recs, err := a.query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	switch len(recs) {
	case 0:
		return nil, apperror.NewNotFound(a.cfg.Entity, argID(args))
	case 1:
		return &recs[0], nil
	default:
		return nil, apperror.NewIntegrity(a.cfg.Entity,
			fmt.Sprintf("%d rows of %s match a single-row lookup", len(recs), a.cfg.Entity)).
			WithDetail("id", argID(args))
	}
}

// SelectList returns all rows matched by sql in statement order. No rows is
// an empty, non-nil slice.
func (a *Accessor[T]) SelectList(ctx context.Context, sql string, args ...any) ([]T, error) {
	return a.query(ctx, sql, args...)
}

// Insert stamps the creation audit fields, writes rec and returns the stored row.
func (a *Accessor[T]) Insert(ctx context.Context, rec *T, actingUserID int64) (*T, error) {
	a.cfg.Audit(rec).StampCreated(actingUserID, a.now())

	var (
		cols []string
		vals []any
	)
	for _, c := range a.cfg.Columns.cols {
		if a.cfg.GeneratedKey && c.Name == a.cfg.Keys[0] {
			continue
		}
		cols = append(cols, c.Name)
		vals = append(vals, c.value(rec))
	}

	q := a.Builder().
		Insert(a.cfg.Table).
		Columns(cols...).
		Values(vals...).
		Suffix(a.returning())

	return a.writeOne(ctx, q)
}

// Update stamps the modification audit fields and writes rec if the stored
// version still equals rec's version. The stored version is incremented by one.
func (a *Accessor[T]) Update(ctx context.Context, rec *T, actingUserID int64) (*T, error) {
	audit := a.cfg.Audit(rec)
	audit.StampModified(actingUserID, a.now())

	q := a.Builder().Update(a.cfg.Table)
	for _, c := range a.cfg.Columns.cols {
		switch {
		case slices.Contains(a.cfg.Keys, c.Name):
		case c.Name == ColCreatedAt, c.Name == ColCreatedBy:
		case c.Name == ColVersion:
			q = q.Set(ColVersion, squirrel.Expr(ColVersion+" + 1"))
		default:
			q = q.Set(c.Name, c.value(rec))
		}
	}
	q = q.Where(a.keyPredicate(rec)).
		Where(squirrel.Eq{ColVersion: audit.Version}).
		Suffix(a.returning())

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", a.cfg.Table, err)
	}
	recs, err := a.query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if len(recs) == 1 {
		return &recs[0], nil
	}
	if len(recs) > 1 {
		return nil, apperror.NewIntegrity(a.cfg.Entity, "update matched more than one row")
	}

	exists, err := a.exists(ctx, rec)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NewNotFound(a.cfg.Entity, a.keyID(rec))
	}
	return nil, apperror.NewConcurrentModification(a.cfg.Entity, a.keyID(rec)).
		WithDetail("expected_version", audit.Version)
}

// Delete removes the row identified by rec's key columns.
func (a *Accessor[T]) Delete(ctx context.Context, rec *T) error {
	sql, args, err := a.Builder().
		Delete(a.cfg.Table).
		Where(a.keyPredicate(rec)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", a.cfg.Table, err)
	}

	tag, err := a.db.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return a.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(a.cfg.Entity, a.keyID(rec))
	}
	return nil
}

func (a *Accessor[T]) writeOne(ctx context.Context, q squirrel.InsertBuilder) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", a.cfg.Table, err)
	}
	recs, err := a.query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if len(recs) != 1 {
		return nil, apperror.NewIntegrity(a.cfg.Entity, fmt.Sprintf("insert returned %d rows", len(recs)))
	}
	return &recs[0], nil
}

func (a *Accessor[T]) exists(ctx context.Context, rec *T) (bool, error) {
	sql, args, err := a.Builder().
		Select("1").
		From(a.cfg.Table).
		Where(a.keyPredicate(rec)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists %s: %w", a.cfg.Table, err)
	}
	var one int
	err = a.db.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check %s exists: %w", a.cfg.Table, err)
	}
	return true, nil
}

func (a *Accessor[T]) query(ctx context.Context, sql string, args ...any) ([]T, error) {
	rows, err := a.db.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, a.mapError(err)
	}
	defer rows.Close()

	recs, err := a.materialize(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, a.mapError(err)
	}
	return recs, nil
}

// materialize binds every result column to its field. Columns without a
// binding are read and dropped; bound columns absent from the result keep
// their zero value.
func (a *Accessor[T]) materialize(rows pgx.Rows) ([]T, error) {
	fields := rows.FieldDescriptions()
	recs := make([]T, 0)

	for rows.Next() {
		var rec T
		dests := make([]any, len(fields))
		var fixes []func(*T)
		for i, fd := range fields {
			col, ok := a.cfg.Columns.Lookup(fd.Name)
			if !ok {
				dests[i] = new(any)
				continue
			}
			dests[i] = col.dest(&rec)
			if col.fix != nil {
				fixes = append(fixes, col.fix)
			}
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, apperror.NewConversion(a.cfg.Table, nil, err)
		}
		for _, fix := range fixes {
			fix(&rec)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (a *Accessor[T]) returning() string {
	return "RETURNING " + strings.Join(a.cfg.Columns.Names(), ", ")
}

func (a *Accessor[T]) keyPredicate(rec *T) squirrel.Eq {
	eq := make(squirrel.Eq, len(a.cfg.Keys))
	for _, k := range a.cfg.Keys {
		col, _ := a.cfg.Columns.Lookup(k)
		eq[k] = col.value(rec)
	}
	return eq
}

func (a *Accessor[T]) keyID(rec *T) any {
	if len(a.cfg.Keys) == 1 {
		col, _ := a.cfg.Columns.Lookup(a.cfg.Keys[0])
		return col.value(rec)
	}
	return map[string]any(a.keyPredicate(rec))
}

func (a *Accessor[T]) mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.NewDuplicate(a.cfg.Entity, pgErr.ConstraintName, pgErr.Detail).WithCause(err)
		case "23503":
			return apperror.NewConflict(fmt.Sprintf("%s references or is referenced by another record", a.cfg.Entity)).
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		}
	}
	return fmt.Errorf("%s: %w", a.cfg.Table, err)
}

func argID(args []any) any {
	if len(args) == 1 {
		return args[0]
	}
	return args
}
