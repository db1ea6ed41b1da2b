package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/stdlib"

	"bogenliga/internal/core/apperror"
)

// TableColumns is the column list one repository expects of its table.
type TableColumns struct {
	Table   string
	Columns []string
}

const schemaColumnsQuery = `SELECT column_name FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = $1
ORDER BY ordinal_position`

// SchemaVerifier compares registered column maps with the physical tables.
type SchemaVerifier struct {
	db *sql.DB
}

// NewSchemaVerifier creates a verifier over db.
func NewSchemaVerifier(db *sql.DB) *SchemaVerifier {
	return &SchemaVerifier{db: db}
}

// NewPoolSchemaVerifier opens a database/sql handle on pool. Close the
// returned *sql.DB when done.
func NewPoolSchemaVerifier(pool *Pool) (*SchemaVerifier, *sql.DB) {
	db := stdlib.OpenDBFromPool(pool.Pool)
	return NewSchemaVerifier(db), db
}

// Verify checks every table and joins the MAPPING_ERRORs found.
func (v *SchemaVerifier) Verify(ctx context.Context, tables []TableColumns) error {
	var errs []error
	for _, t := range tables {
		if err := v.VerifyTable(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// VerifyTable reports missing and unexpected columns of one table.
func (v *SchemaVerifier) VerifyTable(ctx context.Context, t TableColumns) error {
	rows, err := v.db.QueryContext(ctx, schemaColumnsQuery, t.Table)
	if err != nil {
		return fmt.Errorf("query columns of %s: %w", t.Table, err)
	}
	defer rows.Close()

	physical := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan column of %s: %w", t.Table, err)
		}
		physical[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read columns of %s: %w", t.Table, err)
	}

	var missing []string
	for _, c := range t.Columns {
		if !physical[c] {
			missing = append(missing, c)
		}
		delete(physical, c)
	}

	unexpected := make([]string, 0, len(physical))
	for c := range physical {
		unexpected = append(unexpected, c)
	}
	sort.Strings(unexpected)

	if len(missing) > 0 || len(unexpected) > 0 {
		return apperror.NewMapping(t.Table, missing, unexpected)
	}
	return nil
}
