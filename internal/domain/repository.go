// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"bogenliga/internal/core/entity"
)

// Entity is a domain value managed by CatalogService.
type Entity interface {
	entity.Validatable

	// EntityKey identifies the value in errors and in the change log.
	EntityKey() any
}

// CatalogRepository is the persistence contract shared by all master data.
// Writes take the acting user id and return the stored value.
type CatalogRepository[T Entity] interface {
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, e T, actingUserID int64) (T, error)
	Update(ctx context.Context, e T, actingUserID int64) (T, error)
	Delete(ctx context.Context, e T) error
}

// ChangeAction is the kind of write recorded in the change log.
type ChangeAction string

const (
	ChangeCreate ChangeAction = "create"
	ChangeUpdate ChangeAction = "update"
	ChangeDelete ChangeAction = "delete"
)

// Change is one recorded write.
type Change struct {
	Entity   string
	EntityID any
	Action   ChangeAction
	UserID   int64
	State    any
}

// ChangeRecorder persists changes in the same transaction as the write.
type ChangeRecorder interface {
	Record(ctx context.Context, change Change) error
}

// ChangeEntry is a change read back from the log. Changes holds the JSON
// state of the value after the write (before it, for deletes).
type ChangeEntry struct {
	ID        uuid.UUID       `json:"id"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entityId"`
	Action    ChangeAction    `json:"action"`
	UserID    int64           `json:"userId"`
	Changes   json.RawMessage `json:"changes"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ChangeHistory reads the change log of one value, newest first.
type ChangeHistory interface {
	History(ctx context.Context, entity, entityID string, limit int) ([]ChangeEntry, error)
}

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	HookBeforeCreate HookEvent = "before_create"
	HookBeforeUpdate HookEvent = "before_update"
	HookBeforeDelete HookEvent = "before_delete"
)

// Hook runs at a lifecycle point. Returning an error aborts the operation.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{hooks: make(map[HookEvent][]Hook[T])}
}

// On registers a hook for event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes the hooks of event in registration order.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook run after validation, before insert.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.On(HookBeforeCreate, hook)
}

// OnBeforeUpdate registers a hook run after validation, before update.
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) {
	r.On(HookBeforeUpdate, hook)
}

// OnBeforeDelete registers a hook run before delete.
func (r *HookRegistry[T]) OnBeforeDelete(hook Hook[T]) {
	r.On(HookBeforeDelete, hook)
}
