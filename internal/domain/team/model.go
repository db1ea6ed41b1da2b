// Package team provides the teams a club enters into league events.
package team

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// Team is one club team registered for one event.
type Team struct {
	ID        int64
	ClubID    int64
	Number    int64 // 1 for the club's first team, 2 for the second, ...
	EventID   int64
	SortOrder int64

	entity.AuditFields
}

// Validate implements entity.Validatable.
func (t *Team) Validate(ctx context.Context) error {
	return domain.FirstError(
		domain.RequireNonNegative("id", t.ID),
		domain.RequireNonNegative("clubId", t.ClubID),
		domain.RequirePositive("number", t.Number),
		domain.RequireNonNegative("eventId", t.EventID),
		domain.RequireNonNegative("sortOrder", t.SortOrder),
	)
}

// EntityKey implements domain.Entity.
func (t *Team) EntityKey() any {
	return t.ID
}
