// Package query composes the fixed SELECT statements used by the repositories.
//
// Statements are assembled once, at package initialisation, from declarative
// fragments. Values are never part of the string: every predicate carries a
// positional placeholder and arguments are bound at execution time.
package query

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
)

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Builder accumulates query fragments. It is a value type: each method returns
// a modified copy, so a common prefix can be shared between statements.
type Builder struct {
	table    string
	columns  []string
	distinct bool
	where    []string
	orderBy  []string
}

// SelectAll starts a SELECT * over table.
func SelectAll(table string) Builder {
	return Builder{table: table}
}

// Select starts a SELECT of explicit columns over table.
func Select(table string, columns ...string) Builder {
	return Builder{table: table, columns: append([]string(nil), columns...)}
}

// Distinct turns the statement into SELECT DISTINCT.
func (b Builder) Distinct() Builder {
	b.distinct = true
	return b
}

// WhereEquals appends "AND column = ?".
func (b Builder) WhereEquals(column string) Builder {
	b.where = append(append([]string(nil), b.where...), column)
	return b
}

// OrderBy appends ordering columns (ascending).
func (b Builder) OrderBy(columns ...string) Builder {
	b.orderBy = append(append([]string(nil), b.orderBy...), columns...)
	return b
}

// Compose renders the statement with PostgreSQL placeholders ($1, $2, ...).
// Fragments are emitted in the fixed order select, from, where, order by.
// Compose panics on an invalid identifier; it is meant for package-level vars.
func (b Builder) Compose() string {
	sql, err := b.ToSQL()
	if err != nil {
		panic(err)
	}
	return sql
}

// ToSQL is the non-panicking form of Compose.
func (b Builder) ToSQL() (string, error) {
	if err := b.validate(); err != nil {
		return "", err
	}

	columns := b.columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(columns...).
		From(b.table)
	if b.distinct {
		sb = sb.Distinct()
	}
	for _, col := range b.where {
		sb = sb.Where(col + " = ?")
	}
	if len(b.orderBy) > 0 {
		sb = sb.OrderBy(b.orderBy...)
	}

	sql, _, err := sb.ToSql()
	if err != nil {
		return "", fmt.Errorf("compose query on %s: %w", b.table, err)
	}
	return sql, nil
}

func (b Builder) validate() error {
	if !identifier.MatchString(b.table) {
		return fmt.Errorf("invalid table name %q", b.table)
	}
	for _, group := range [][]string{b.columns, b.where, b.orderBy} {
		for _, col := range group {
			if !identifier.MatchString(col) {
				return fmt.Errorf("invalid column name %q on %s", col, b.table)
			}
		}
	}
	return nil
}
