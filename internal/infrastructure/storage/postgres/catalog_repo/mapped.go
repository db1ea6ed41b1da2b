package catalog_repo

import (
	"context"

	"bogenliga/internal/infrastructure/storage/postgres"
)

// mappedRepo serves domain values D from records R through the entity's
// mapping pair. Every repository of this package embeds one.
type mappedRepo[R, D any] struct {
	acc      *Accessor[R]
	toDomain func(*R) D
	toRecord func(D) *R
	findAll  string
}

func newMappedRepo[R, D any](
	db postgres.QuerierProvider,
	cfg EntityConfig[R],
	findAll string,
	toDomain func(*R) D,
	toRecord func(D) *R,
) *mappedRepo[R, D] {
	return &mappedRepo[R, D]{
		acc:      NewAccessor(db, cfg),
		toDomain: toDomain,
		toRecord: toRecord,
		findAll:  findAll,
	}
}

// FindAll returns every row in the entity's natural order.
func (m *mappedRepo[R, D]) FindAll(ctx context.Context) ([]D, error) {
	return m.list(ctx, m.findAll)
}

// Create inserts v and returns the stored value.
func (m *mappedRepo[R, D]) Create(ctx context.Context, v D, actingUserID int64) (D, error) {
	rec, err := m.acc.Insert(ctx, m.toRecord(v), actingUserID)
	if err != nil {
		var zero D
		return zero, err
	}
	return m.toDomain(rec), nil
}

// Update writes v guarded by its version and returns the stored value.
func (m *mappedRepo[R, D]) Update(ctx context.Context, v D, actingUserID int64) (D, error) {
	rec, err := m.acc.Update(ctx, m.toRecord(v), actingUserID)
	if err != nil {
		var zero D
		return zero, err
	}
	return m.toDomain(rec), nil
}

// Delete removes v by key.
func (m *mappedRepo[R, D]) Delete(ctx context.Context, v D) error {
	return m.acc.Delete(ctx, m.toRecord(v))
}

func (m *mappedRepo[R, D]) one(ctx context.Context, sql string, args ...any) (D, error) {
	rec, err := m.acc.SelectSingle(ctx, sql, args...)
	if err != nil {
		var zero D
		return zero, err
	}
	return m.toDomain(rec), nil
}

func (m *mappedRepo[R, D]) list(ctx context.Context, sql string, args ...any) ([]D, error) {
	recs, err := m.acc.SelectList(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	out := make([]D, len(recs))
	for i := range recs {
		out[i] = m.toDomain(&recs[i])
	}
	return out, nil
}
