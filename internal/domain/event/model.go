// Package event provides league events: one season of one league.
package event

import (
	"context"
	"time"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// Event is one season of a league.
type Event struct {
	ID                int64
	Name              string
	LeagueID          int64
	Season            int64
	Deadline          time.Time // registration deadline, date only
	LeagueManagerID   int64
	CompetitionTypeID int64

	entity.AuditFields
}

// Validate implements entity.Validatable.
func (e *Event) Validate(ctx context.Context) error {
	if err := domain.FirstError(
		domain.RequireNonNegative("id", e.ID),
		domain.RequireNotBlank("name", e.Name),
		domain.RequireNonNegative("leagueId", e.LeagueID),
		domain.RequirePositive("season", e.Season),
		domain.RequireNonNegative("leagueManagerId", e.LeagueManagerID),
		domain.RequireNonNegative("competitionTypeId", e.CompetitionTypeID),
	); err != nil {
		return err
	}
	if e.Deadline.IsZero() {
		return apperror.NewValidation("deadline is required").WithDetail("field", "deadline")
	}
	return nil
}

// EntityKey implements domain.Entity.
func (e *Event) EntityKey() any {
	return e.ID
}
