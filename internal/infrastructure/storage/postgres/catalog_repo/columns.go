package catalog_repo

import (
	"fmt"
	"time"

	"bogenliga/internal/core/convert"
	"bogenliga/internal/core/entity"
)

// Technical columns present on every table.
const (
	ColCreatedAt      = "created_at_utc"
	ColCreatedBy      = "created_by"
	ColLastModifiedAt = "last_modified_at_utc"
	ColLastModifiedBy = "last_modified_by"
	ColVersion        = "version"
)

// Column binds one table column to one field of the record type T.
// Bindings are plain functions, so a renamed or retyped field breaks the build
// instead of silently dropping data.
type Column[T any] struct {
	Name string

	value func(*T) any // value written on insert/update
	dest  func(*T) any // scan target
	fix   func(*T)     // normalisation applied after scanning
}

// Col binds a column to a field of any scannable type (including pointers for NULLable columns).
func Col[T, V any](name string, field func(*T) *V) Column[T] {
	return Column[T]{
		Name:  name,
		value: func(r *T) any { return *field(r) },
		dest:  func(r *T) any { return field(r) },
	}
}

// TimeCol binds a NOT NULL timestamp or date column; values are normalised to UTC.
func TimeCol[T any](name string, field func(*T) *time.Time) Column[T] {
	c := Col(name, field)
	c.fix = func(r *T) {
		p := field(r)
		*p = convert.UTC(*p)
	}
	return c
}

// NullTimeCol binds a NULLable timestamp column; values are normalised to UTC.
func NullTimeCol[T any](name string, field func(*T) **time.Time) Column[T] {
	c := Col(name, field)
	c.fix = func(r *T) {
		p := field(r)
		*p = convert.UTCPtr(*p)
	}
	return c
}

// ColumnMap is the immutable column-to-field map of one record type.
// It always ends with the technical audit columns.
type ColumnMap[T any] struct {
	cols  []Column[T]
	index map[string]int
}

// NewColumnMap builds the map from the entity columns plus the audit columns.
// Duplicate column names are a programming error and panic.
func NewColumnMap[T any](audit func(*T) *entity.AuditFields, cols ...Column[T]) ColumnMap[T] {
	all := append(append([]Column[T](nil), cols...), auditColumns(audit)...)

	m := ColumnMap[T]{cols: all, index: make(map[string]int, len(all))}
	for i, c := range all {
		if _, dup := m.index[c.Name]; dup {
			panic(fmt.Sprintf("duplicate column %q in column map", c.Name))
		}
		m.index[c.Name] = i
	}
	return m
}

func auditColumns[T any](audit func(*T) *entity.AuditFields) []Column[T] {
	return []Column[T]{
		TimeCol(ColCreatedAt, func(r *T) *time.Time { return &audit(r).CreatedAtUTC }),
		Col(ColCreatedBy, func(r *T) *int64 { return &audit(r).CreatedBy }),
		NullTimeCol(ColLastModifiedAt, func(r *T) **time.Time { return &audit(r).LastModifiedAtUTC }),
		Col(ColLastModifiedBy, func(r *T) **int64 { return &audit(r).LastModifiedBy }),
		Col(ColVersion, func(r *T) *int64 { return &audit(r).Version }),
	}
}

// Names returns the column names in declaration order.
func (m ColumnMap[T]) Names() []string {
	names := make([]string, len(m.cols))
	for i, c := range m.cols {
		names[i] = c.Name
	}
	return names
}

// Lookup finds the binding for a column.
func (m ColumnMap[T]) Lookup(name string) (Column[T], bool) {
	i, ok := m.index[name]
	if !ok {
		return Column[T]{}, false
	}
	return m.cols[i], true
}

// Len returns the number of bound columns.
func (m ColumnMap[T]) Len() int {
	return len(m.cols)
}
