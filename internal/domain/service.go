package domain

import (
	"context"
	"fmt"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
	"bogenliga/internal/core/tx"
)

// CatalogService provides the shared write path for master data:
// validate, run hooks, persist and record the change in one transaction.
type CatalogService[T Entity] struct {
	repo       CatalogRepository[T]
	txManager  tx.Manager
	changes    ChangeRecorder
	hooks      *HookRegistry[T]
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T Entity] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	Changes    ChangeRecorder // optional
	EntityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T Entity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	txm := cfg.TxManager
	if txm == nil {
		txm = tx.Inline
	}
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  txm,
		changes:    cfg.Changes,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the name used in errors and the change log.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

// TxManager exposes the transaction manager to embedding services.
func (s *CatalogService[T]) TxManager() tx.Manager {
	return s.txManager
}

// ActingUserID returns the id of the caller. Writes without a caller are rejected.
func ActingUserID(ctx context.Context) (int64, error) {
	userID := appctx.GetUserID(ctx)
	if err := RequireNonNegative("current user id", userID); err != nil {
		return 0, err
	}
	return userID, nil
}

func normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

// FindAll returns every stored value in the repository's natural order.
func (s *CatalogService[T]) FindAll(ctx context.Context) ([]T, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entityName, err)
	}
	return items, nil
}

// Create validates and inserts e, returning the stored value.
func (s *CatalogService[T]) Create(ctx context.Context, e T) (T, error) {
	var zero T

	userID, err := ActingUserID(ctx)
	if err != nil {
		return zero, err
	}
	if err := e.Validate(ctx); err != nil {
		return zero, normalizeValidationErr(err)
	}
	if err := s.hooks.Run(ctx, HookBeforeCreate, e); err != nil {
		return zero, err
	}

	var created T
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, e, userID)
		if err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return s.record(ctx, ChangeCreate, userID, created)
	})
	if err != nil {
		return zero, err
	}
	return created, nil
}

// Update validates and writes e. The version carried by e must match the stored one.
func (s *CatalogService[T]) Update(ctx context.Context, e T) (T, error) {
	var zero T

	userID, err := ActingUserID(ctx)
	if err != nil {
		return zero, err
	}
	if err := e.Validate(ctx); err != nil {
		return zero, normalizeValidationErr(err)
	}
	if err := s.hooks.Run(ctx, HookBeforeUpdate, e); err != nil {
		return zero, err
	}

	var updated T
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repo.Update(ctx, e, userID)
		if err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return s.record(ctx, ChangeUpdate, userID, updated)
	})
	if err != nil {
		return zero, err
	}
	return updated, nil
}

// Delete removes e.
func (s *CatalogService[T]) Delete(ctx context.Context, e T) error {
	userID, err := ActingUserID(ctx)
	if err != nil {
		return err
	}
	if err := s.hooks.Run(ctx, HookBeforeDelete, e); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, e); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return s.record(ctx, ChangeDelete, userID, e)
	})
}

// Record writes a change entry for writes performed outside Create/Update/Delete.
func (s *CatalogService[T]) Record(ctx context.Context, action ChangeAction, userID int64, e T) error {
	return s.record(ctx, action, userID, e)
}

func (s *CatalogService[T]) record(ctx context.Context, action ChangeAction, userID int64, e T) error {
	if s.changes == nil {
		return nil
	}
	err := s.changes.Record(ctx, Change{
		Entity:   s.entityName,
		EntityID: e.EntityKey(),
		Action:   action,
		UserID:   userID,
		State:    e,
	})
	if err != nil {
		return fmt.Errorf("record %s change: %w", s.entityName, err)
	}
	return nil
}
