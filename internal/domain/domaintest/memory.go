// Package domaintest provides an in-memory repository for service tests.
package domaintest

import (
	"context"
	"sync"
	"time"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// Record is a pointer to a domain value with embedded audit fields.
type Record[E any] interface {
	*E
	domain.Entity
	Audit() *entity.AuditFields
}

// Memory implements domain.CatalogRepository in memory with the same audit
// and version semantics as the PostgreSQL accessor.
type Memory[E any, P Record[E]] struct {
	mu     sync.Mutex
	entity string
	items  []P
	nextID int64
	setID  func(P, int64)

	Now func() time.Time
}

// NewMemory creates an empty store. setID assigns generated ids on create
// and may be nil for values with natural keys.
func NewMemory[E any, P Record[E]](entityName string, setID func(P, int64)) *Memory[E, P] {
	return &Memory[E, P]{
		entity: entityName,
		nextID: 1,
		setID:  setID,
		Now:    func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func clone[E any, P Record[E]](p P) P {
	c := *p
	return P(&c)
}

// Seed stores items as they are. Generated ids continue after the highest
// seeded id.
func (m *Memory[E, P]) Seed(items ...P) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range items {
		m.items = append(m.items, clone[E, P](it))
		if id, ok := it.EntityKey().(int64); ok && id >= m.nextID {
			m.nextID = id + 1
		}
	}
}

// Filter returns copies of the stored values matching keep, in insertion order.
func (m *Memory[E, P]) Filter(keep func(P) bool) []P {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]P, 0)
	for _, it := range m.items {
		if keep == nil || keep(it) {
			out = append(out, clone[E, P](it))
		}
	}
	return out
}

// Get returns the value with the given key.
func (m *Memory[E, P]) Get(key any) (P, error) {
	items := m.Filter(func(p P) bool { return p.EntityKey() == key })
	if len(items) == 0 {
		return nil, apperror.NewNotFound(m.entity, key)
	}
	return items[0], nil
}

// FindAll implements domain.CatalogRepository.
func (m *Memory[E, P]) FindAll(context.Context) ([]P, error) {
	return m.Filter(nil), nil
}

// Create implements domain.CatalogRepository.
func (m *Memory[E, P]) Create(_ context.Context, e P, actingUserID int64) (P, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := clone[E, P](e)
	if m.setID != nil {
		m.setID(c, m.nextID)
		m.nextID++
	}
	for _, it := range m.items {
		if it.EntityKey() == c.EntityKey() {
			return nil, apperror.NewDuplicate(m.entity, "key", "")
		}
	}
	c.Audit().StampCreated(actingUserID, m.Now())
	m.items = append(m.items, c)
	return clone[E, P](c), nil
}

// Update implements domain.CatalogRepository.
func (m *Memory[E, P]) Update(_ context.Context, e P, actingUserID int64) (P, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, it := range m.items {
		if it.EntityKey() != e.EntityKey() {
			continue
		}
		if it.Audit().Version != e.Audit().Version {
			return nil, apperror.NewConcurrentModification(m.entity, e.EntityKey())
		}
		c := clone[E, P](e)
		*c.Audit() = *it.Audit()
		c.Audit().StampModified(actingUserID, m.Now())
		c.Audit().Version++
		m.items[i] = c
		return clone[E, P](c), nil
	}
	return nil, apperror.NewNotFound(m.entity, e.EntityKey())
}

// Delete implements domain.CatalogRepository.
func (m *Memory[E, P]) Delete(_ context.Context, e P) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, it := range m.items {
		if it.EntityKey() == e.EntityKey() {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound(m.entity, e.EntityKey())
}

