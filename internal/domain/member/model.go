// Package member provides the registered archers of the federation.
package member

import (
	"context"
	"time"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// Member is an archer registered with a club.
type Member struct {
	ID           int64
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Nationality  string
	MemberNumber string
	ClubID       int64
	UserID       *int64 // login account, if any

	entity.AuditFields
}

// Validate implements entity.Validatable.
func (m *Member) Validate(ctx context.Context) error {
	if err := domain.FirstError(
		domain.RequireNonNegative("id", m.ID),
		domain.RequireNotBlank("firstName", m.FirstName),
		domain.RequireNotBlank("lastName", m.LastName),
		domain.RequireNotBlank("nationality", m.Nationality),
		domain.RequireNotBlank("memberNumber", m.MemberNumber),
		domain.RequireNonNegative("clubId", m.ClubID),
	); err != nil {
		return err
	}
	if m.BirthDate.IsZero() {
		return apperror.NewValidation("birth date is required").WithDetail("field", "birthDate")
	}
	if m.UserID != nil {
		return domain.RequireNonNegative("userId", *m.UserID)
	}
	return nil
}

// EntityKey implements domain.Entity.
func (m *Member) EntityKey() any {
	return m.ID
}
