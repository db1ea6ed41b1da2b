package catalog_repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bogenliga/internal/infrastructure/storage/postgres"
)

// fakeResult is what the fake querier answers to one statement.
type fakeResult struct {
	columns  []string
	rows     [][]any
	affected int64
	err      error
}

type fakeCall struct {
	sql  string
	args []any
}

// fakeQuerier answers statements from a queue, in order, and records them.
type fakeQuerier struct {
	results []fakeResult
	calls   []fakeCall
}

func (f *fakeQuerier) GetQuerier(context.Context) postgres.Querier {
	return f
}

func (f *fakeQuerier) next(sql string, args []any) fakeResult {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	if len(f.results) == 0 {
		return fakeResult{err: fmt.Errorf("unexpected statement: %s", sql)}
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r := f.next(sql, args)
	if r.err != nil {
		return pgconn.CommandTag{}, r.err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", r.affected)), nil
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r := f.next(sql, args)
	if r.err != nil {
		return nil, r.err
	}
	return &fakeRows{columns: r.columns, rows: r.rows, pos: -1}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r := f.next(sql, args)
	return &fakeRow{res: r}
}

type fakeRow struct {
	res fakeResult
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.res.err != nil {
		return r.res.err
	}
	if len(r.res.rows) == 0 {
		return pgx.ErrNoRows
	}
	return assign(dest, r.res.rows[0])
}

type fakeRows struct {
	columns []string
	rows    [][]any
	pos     int
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.rows[r.pos])
}

// assign copies row values into scan targets the way pgx would for the
// handful of Go types used by the records.
func assign(dest []any, row []any) error {
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d targets for %d values", len(dest), len(row))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		v := row[i]
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		val := reflect.ValueOf(v)
		switch {
		case target.Kind() == reflect.Interface:
			target.Set(val)
		case target.Kind() == reflect.Pointer && val.Type().ConvertibleTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(val.Convert(target.Type().Elem()))
			target.Set(p)
		case val.Type().ConvertibleTo(target.Type()):
			target.Set(val.Convert(target.Type()))
		default:
			return fmt.Errorf("scan: cannot assign %T to %s", v, target.Type())
		}
	}
	return nil
}
