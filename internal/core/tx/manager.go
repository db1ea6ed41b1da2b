// Package tx provides transaction management abstractions so domain services
// do not depend on the database driver.
package tx

import (
	"context"
)

// Manager runs fn inside a database transaction. If fn returns an error the
// transaction is rolled back, otherwise committed. Nested calls reuse the
// transaction already present in ctx.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager extends Manager with read-only transaction support.
type ReadOnlyManager interface {
	Manager
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Func adapts a plain function to Manager. Tests use it to run callbacks inline.
type Func func(ctx context.Context, fn func(ctx context.Context) error) error

// RunInTransaction implements Manager.
func (f Func) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// Inline is a Manager that runs fn directly without a transaction.
var Inline Manager = Func(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})
